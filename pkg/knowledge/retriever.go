package knowledge

import (
	"sync/atomic"

	"op-mental-be/pkg/embedding"
	"op-mental-be/pkg/vecindex"
)

const DefaultTopK = 3

// Result is a scored corpus hit.
type Result struct {
	Title      string
	Text       string
	Domain     string
	Similarity float32
}

type snapshot struct {
	index *vecindex.Index
	docs  []Document
}

// Retriever answers similarity queries against the current corpus
// snapshot. Rebuild constructs a fresh index off to the side and swaps
// it in atomically, so readers never observe a half-built index.
type Retriever struct {
	provider embedding.EmbeddingProvider
	source   Source
	snap     atomic.Pointer[snapshot]
}

func NewRetriever(provider embedding.EmbeddingProvider, source Source) *Retriever {
	r := &Retriever{
		provider: provider,
		source:   source,
	}
	r.snap.Store(&snapshot{index: vecindex.New(provider)})
	return r
}

// Rebuild reloads the corpus and replaces the snapshot. On failure the
// previous snapshot stays in service.
func (r *Retriever) Rebuild() error {
	docs, err := r.source.Load()
	if err != nil {
		return err
	}

	index := vecindex.New(r.provider)
	kept := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if _, err := index.Insert(doc.Text, doc.Domain); err != nil {
			return err
		}
		kept = append(kept, doc)
	}

	r.snap.Store(&snapshot{index: index, docs: kept})
	return nil
}

// Retrieve returns the topK corpus entries most similar to query within
// the given domain. A non-positive topK falls back to DefaultTopK.
func (r *Retriever) Retrieve(query string, domain string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	snap := r.snap.Load()
	matches, err := snap.index.Search(query, topK, domain)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		doc := snap.docs[m.ID]
		results = append(results, Result{
			Title:      doc.Title,
			Text:       doc.Text,
			Domain:     doc.Domain,
			Similarity: m.Score,
		})
	}
	return results, nil
}

// Len reports the number of documents in the current snapshot.
func (r *Retriever) Len() int {
	return r.snap.Load().index.Len()
}
