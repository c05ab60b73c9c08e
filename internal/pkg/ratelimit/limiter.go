package ratelimit

import (
	"context"
	"time"
)

// Result describes one admission decision over a sliding window.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the whole number of seconds until the window resets.
func (r Result) RetryAfter(now time.Time) int {
	d := r.ResetAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// Limiter counts hits per key over a sliding window. Every call is counted,
// rejected ones included.
type Limiter interface {
	Allow(ctx context.Context, key string, max int, window time.Duration) (Result, error)
}

func decide(count int64, max int, now time.Time, window time.Duration) Result {
	remaining := max - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count < int64(max),
		Limit:     max,
		Remaining: remaining,
		ResetAt:   now.Add(window),
	}
}

// Open is the decision used when the backing store cannot answer.
func Open(max int, now time.Time, window time.Duration) Result {
	return Result{Allowed: true, Limit: max, Remaining: max, ResetAt: now.Add(window)}
}
