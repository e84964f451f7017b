// Package memory implements embedding-backed conversation recall. Each
// turn is indexed as a single document so past exchanges can be pulled
// back into the prompt when they are semantically close to the current
// message.
package memory

import (
	"fmt"
	"sync"
	"time"

	"op-mental-be/pkg/embedding"
	"op-mental-be/pkg/vecindex"
)

// DefaultRecallThreshold filters out weakly related turns. Below this
// similarity a turn adds noise, not context.
const DefaultRecallThreshold = 0.3

// Turn is one user/bot exchange.
type Turn struct {
	Timestamp   time.Time
	UserMessage string
	BotResponse string
}

// FullText renders the turn the way it is embedded and recalled.
func (t Turn) FullText() string {
	return fmt.Sprintf("User: %s\nBot: %s", t.UserMessage, t.BotResponse)
}

// Memory keeps the ordered history plus a vector index over it. The
// history always holds every turn; the index may hold fewer when an
// embedding call failed for a turn.
type Memory struct {
	provider embedding.EmbeddingProvider

	mu      sync.RWMutex
	index   *vecindex.Index
	turns   []Turn
	indexed []int // index ID -> position in turns
}

func New(provider embedding.EmbeddingProvider) *Memory {
	return &Memory{
		provider: provider,
		index:    vecindex.New(provider),
	}
}

// NewFromHistory rebuilds memory from a persisted history, e.g. when a
// session is rehydrated. Turns that fail to embed stay in the history
// but are not recallable.
func NewFromHistory(provider embedding.EmbeddingProvider, history []Turn) *Memory {
	m := New(provider)
	for _, turn := range history {
		m.append(turn)
	}
	return m
}

// Append records a completed exchange.
func (m *Memory) Append(userMessage, botResponse string) {
	m.append(Turn{
		Timestamp:   time.Now(),
		UserMessage: userMessage,
		BotResponse: botResponse,
	})
}

func (m *Memory) append(turn Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos := len(m.turns)
	m.turns = append(m.turns, turn)

	if _, err := m.index.Insert(turn.FullText(), vecindex.DomainAll); err != nil {
		return
	}
	m.indexed = append(m.indexed, pos)
}

// Recall returns up to topK past turns at least minSim similar to the
// query, most similar first. A non-positive minSim falls back to
// DefaultRecallThreshold.
func (m *Memory) Recall(query string, topK int, minSim float32) []Turn {
	if minSim <= 0 {
		minSim = DefaultRecallThreshold
	}

	matches, err := m.index.Query(query, topK)
	if err != nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var recalled []Turn
	for _, match := range matches {
		if match.Score < minSim {
			continue
		}
		recalled = append(recalled, m.turns[m.indexed[match.ID]])
	}
	return recalled
}

// History returns every recorded turn in chronological order.
func (m *Memory) History() []Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len reports how many turns are stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}
