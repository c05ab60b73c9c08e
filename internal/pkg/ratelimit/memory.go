package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryLimiter is the in-process fallback used when no Redis is configured.
// Counts are per instance.
type MemoryLimiter struct {
	mu   sync.Mutex
	hits *cache.Cache
	now  func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		hits: cache.New(time.Hour, 10*time.Minute),
		now:  time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, max int, window time.Duration) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	var kept []time.Time
	if v, found := l.hits.Get(key); found {
		for _, t := range v.([]time.Time) {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
	}

	res := decide(int64(len(kept)), max, now, window)
	l.hits.Set(key, append(kept, now), window)
	return res, nil
}
