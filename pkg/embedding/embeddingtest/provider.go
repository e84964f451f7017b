// Package embeddingtest provides deterministic in-process embedding
// providers for tests, so no network or model is needed.
package embeddingtest

import (
	"hash/fnv"
	"strings"

	"op-mental-be/pkg/embedding"
)

const dim = 64

// WordHashProvider embeds text by hashing each word into a fixed-size
// bag-of-words vector. Texts sharing words get high cosine similarity,
// unrelated texts get near-zero, which is enough to exercise retrieval
// and recall paths deterministically.
type WordHashProvider struct{}

func New() *WordHashProvider {
	return &WordHashProvider{}
}

func (p *WordHashProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	vec := make([]float32, dim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "" {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%dim]++
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: embedding.Normalize(vec),
		},
	}, nil
}

// FailingProvider always returns the configured error.
type FailingProvider struct {
	Err error
}

func (p *FailingProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return nil, p.Err
}
