// Package vecindex implements an in-memory inner-product vector index.
// Vectors are normalized by the embedding provider, so inner product
// equals cosine similarity.
package vecindex

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"op-mental-be/pkg/embedding"
)

var ErrInvalidInput = errors.New("vecindex: text must not be empty")

// DomainAll matches every domain, both as an entry tag and as a query filter.
const DomainAll = "all"

// Match is a single search hit: the insertion-order ID of the entry and
// its cosine similarity to the query.
type Match struct {
	ID    int
	Score float32
}

type entry struct {
	vector []float32
	domain string
}

// Index is a linear-scan inner-product index. IDs are assigned in
// insertion order starting at 0 and are never reused.
type Index struct {
	provider embedding.EmbeddingProvider

	mu      sync.RWMutex
	entries []entry
	dim     int
}

func New(provider embedding.EmbeddingProvider) *Index {
	return &Index{provider: provider}
}

// Insert embeds text and adds it to the index under the given domain tag.
// It returns the assigned ID.
func (idx *Index) Insert(text string, domain string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrInvalidInput
	}

	resp, err := idx.provider.Generate(text, embedding.TaskRetrievalDocument)
	if err != nil {
		return 0, fmt.Errorf("embed document: %w", err)
	}
	vec := resp.Embedding.Values

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dim == 0 {
		idx.dim = len(vec)
	} else if len(vec) != idx.dim {
		return 0, fmt.Errorf("vecindex: dimension mismatch, index has %d, got %d", idx.dim, len(vec))
	}

	id := len(idx.entries)
	idx.entries = append(idx.entries, entry{vector: vec, domain: domain})
	return id, nil
}

// Query returns the top-k most similar entries across all domains,
// ordered by descending score. Ties keep insertion order. An empty
// index yields no matches and no error.
func (idx *Index) Query(text string, k int) ([]Match, error) {
	return idx.Search(text, k, DomainAll)
}

// Search is Query restricted to a domain. Entries tagged DomainAll match
// every filter, and a DomainAll filter matches every entry.
func (idx *Index) Search(text string, k int, domain string) ([]Match, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}
	if k <= 0 {
		return nil, nil
	}

	idx.mu.RLock()
	empty := len(idx.entries) == 0
	idx.mu.RUnlock()
	if empty {
		return nil, nil
	}

	resp, err := idx.provider.Generate(text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	query := resp.Embedding.Values

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(query) != idx.dim {
		return nil, fmt.Errorf("vecindex: dimension mismatch, index has %d, got %d", idx.dim, len(query))
	}

	matches := make([]Match, 0, len(idx.entries))
	for id, e := range idx.entries {
		if domain != DomainAll && e.domain != DomainAll && e.domain != domain {
			continue
		}
		matches = append(matches, Match{ID: id, Score: dot(query, e.vector)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// Len reports the number of indexed entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
