package affect

import (
	"testing"

	"op-mental-be/pkg/embedding/embeddingtest"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzePositiveOverlap(t *testing.T) {
	analyzer := NewAnalyzer(embeddingtest.New())

	sentiment, _ := analyzer.Analyze("I felt proud happy excited confident accomplished after the launch")

	assert.Equal(t, SentimentPositive, sentiment)
}

func TestAnalyzeNegativeOverlap(t *testing.T) {
	analyzer := NewAnalyzer(embeddingtest.New())

	sentiment, _ := analyzer.Analyze("everything is difficult stressed overwhelmed sad worried anxious lately")

	assert.Equal(t, SentimentNegative, sentiment)
}

func TestAnalyzeFutureOrientation(t *testing.T) {
	analyzer := NewAnalyzer(embeddingtest.New())

	_, futureFocused := analyzer.Analyze("my goals dreams plans aspirations for the future")

	assert.True(t, futureFocused)
}

func TestAnalyzeProviderFailureIsNeutral(t *testing.T) {
	analyzer := NewAnalyzer(&embeddingtest.FailingProvider{Err: assert.AnError})

	sentiment, futureFocused := analyzer.Analyze("anything")

	assert.Equal(t, SentimentNeutral, sentiment)
	assert.False(t, futureFocused)
}
