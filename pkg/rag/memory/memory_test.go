package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"op-mental-be/pkg/embedding/embeddingtest"
	"op-mental-be/pkg/rag/memory"
)

func TestAppendAndHistory(t *testing.T) {
	m := memory.New(embeddingtest.New())

	m.Append("hello there", "hi, how are you feeling today")
	m.Append("pretty tired lately", "tell me more about your sleep")

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, "hello there", history[0].UserMessage)
	assert.Equal(t, "User: pretty tired lately\nBot: tell me more about your sleep", history[1].FullText())
}

func TestRecallReturnsRelatedTurns(t *testing.T) {
	m := memory.New(embeddingtest.New())

	m.Append("my dog passed away last month", "I'm sorry about your dog, grief takes time")
	m.Append("work has been stressful", "what part of work feels heaviest")

	recalled := m.Recall("I still miss my dog so much", 5, 0)
	require.NotEmpty(t, recalled)
	assert.Equal(t, "my dog passed away last month", recalled[0].UserMessage)
}

func TestRecallFiltersDissimilarTurns(t *testing.T) {
	m := memory.New(embeddingtest.New())

	m.Append("quarterly budget spreadsheet numbers", "the totals look consistent")

	recalled := m.Recall("ocean waves seagull sunset", 5, 0.99)
	assert.Empty(t, recalled)
}

func TestNewFromHistoryIsRecallable(t *testing.T) {
	turns := []memory.Turn{
		{Timestamp: time.Now(), UserMessage: "I started running again", BotResponse: "running is a great reset"},
	}

	m := memory.NewFromHistory(embeddingtest.New(), turns)
	assert.Equal(t, 1, m.Len())

	recalled := m.Recall("how is my running going", 3, 0)
	require.Len(t, recalled, 1)
	assert.Equal(t, "I started running again", recalled[0].UserMessage)
}

func TestEmbedFailureKeepsHistory(t *testing.T) {
	turns := []memory.Turn{
		{Timestamp: time.Now(), UserMessage: "a", BotResponse: "b"},
		{Timestamp: time.Now(), UserMessage: "c", BotResponse: "d"},
	}

	m := memory.NewFromHistory(&embeddingtest.FailingProvider{Err: errors.New("offline")}, turns)

	assert.Equal(t, 2, m.Len())
	assert.Empty(t, m.Recall("anything", 5, 0))
}
