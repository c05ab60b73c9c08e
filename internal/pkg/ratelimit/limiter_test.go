package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_SlidingWindow(t *testing.T) {
	l := NewMemoryLimiter()
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		res, err := l.Allow(ctx, "analyze:1.2.3.4", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "hit %d", i+1)
		assert.Equal(t, 2-i, res.Remaining)
		clock = clock.Add(time.Minute)
	}

	res, err := l.Allow(ctx, "analyze:1.2.3.4", 3, time.Hour)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, clock.Add(time.Hour), res.ResetAt)

	other, err := l.Allow(ctx, "analyze:5.6.7.8", 3, time.Hour)
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	// The first hit leaves the window after an hour; the rejected one counted.
	clock = time.Date(2026, 3, 1, 11, 0, 30, 0, time.UTC)
	res, err = l.Allow(ctx, "analyze:1.2.3.4", 3, time.Hour)
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	clock = time.Date(2026, 3, 1, 11, 2, 30, 0, time.UTC)
	res, err = l.Allow(ctx, "analyze:1.2.3.4", 3, time.Hour)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisLimiter_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	_, err := NewRedisLimiter(client).Allow(context.Background(), "upload:1.2.3.4", 5, time.Hour)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload:1.2.3.4")
}

func TestResult_RetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		resetAt time.Time
		want    int
	}{
		{"whole hour", now.Add(time.Hour), 3600},
		{"rounds up", now.Add(1500 * time.Millisecond), 2},
		{"already past", now.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result{ResetAt: tt.resetAt}.RetryAfter(now))
		})
	}
}

func TestOpen(t *testing.T) {
	now := time.Now()
	res := Open(5, now, time.Hour)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
	assert.Equal(t, now.Add(time.Hour), res.ResetAt)
}
