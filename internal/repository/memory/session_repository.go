// Package memory holds the in-process session store. Sessions expire
// after the configured TTL; the flat history inside each session is the
// only state that survives between turns.
package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is a typed wrapper over go-cache, one instance per
// session kind so the stored values stay concrete.
type SessionRepository[T any] struct {
	cache *cache.Cache
}

func NewSessionRepository[T any](ttl, cleanup time.Duration) *SessionRepository[T] {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	return &SessionRepository[T]{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *SessionRepository[T]) Save(sessionID string, session *T) {
	r.cache.Set(sessionID, session, cache.DefaultExpiration)
}

func (r *SessionRepository[T]) Get(sessionID string) (*T, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*T), true
	}
	return nil, false
}

func (r *SessionRepository[T]) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
