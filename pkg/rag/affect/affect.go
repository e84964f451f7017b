// Package affect estimates emotional tone and temporal orientation of
// free text by comparing its embedding against seed word lists.
package affect

import (
	"op-mental-be/pkg/embedding"
)

const (
	futureIndicators = "goals dreams vision future plans aspirations wants achieve"
	positiveWords    = "great wonderful amazing excellent successful proud happy excited confident accomplished"
	negativeWords    = "difficult challenging frustrated stressed overwhelmed disappointed sad angry worried anxious"

	// Similarity floors below which the signal is treated as neutral.
	FutureThreshold    = 0.25
	SentimentThreshold = 0.2
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type Analyzer struct {
	provider embedding.EmbeddingProvider
}

func NewAnalyzer(provider embedding.EmbeddingProvider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze returns the dominant sentiment and whether the text leans
// toward future goals. Embedding failures degrade to neutral.
func (a *Analyzer) Analyze(text string) (sentiment string, futureFocused bool) {
	textVec, err := a.embed(text)
	if err != nil {
		return SentimentNeutral, false
	}

	if futureVec, err := a.embed(futureIndicators); err == nil {
		futureFocused = dot(textVec, futureVec) > FutureThreshold
	}

	posVec, posErr := a.embed(positiveWords)
	negVec, negErr := a.embed(negativeWords)
	if posErr != nil || negErr != nil {
		return SentimentNeutral, futureFocused
	}

	posSim := dot(textVec, posVec)
	negSim := dot(textVec, negVec)

	switch {
	case posSim > negSim && posSim > SentimentThreshold:
		return SentimentPositive, futureFocused
	case negSim > posSim && negSim > SentimentThreshold:
		return SentimentNegative, futureFocused
	default:
		return SentimentNeutral, futureFocused
	}
}

func (a *Analyzer) embed(text string) ([]float32, error) {
	res, err := a.provider.Generate(text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}
	return res.Embedding.Values, nil
}

func dot(a, b []float32) float32 {
	var sum float32
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
