package ratelimit

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func exerciseWindow(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	clk := &clock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	l := New(store, 3, time.Hour, WithClock(clk.Now))
	key := "asha@example.com-" + uuid.NewString()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "submission %d", i+1)
		assert.Equal(t, 2-i, d.Remaining)
		clk.Advance(10 * time.Minute)
	}

	d, err := l.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 30*time.Minute, d.RetryAfter)

	clk.Advance(time.Hour)
	d, err = l.Allow(ctx, key)
	require.NoError(t, err)
	assert.True(t, d.Allowed, "window elapsed")
}

func TestMemoryStoreSlidingWindow(t *testing.T) {
	s := NewMemoryStore(100)
	defer s.Close()
	exerciseWindow(t, s)
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	s := NewMemoryStore(100)
	defer s.Close()
	l := New(s, 1, time.Hour)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "a")
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "a")
	assert.False(t, d.Allowed)
	assert.Positive(t, d.RetryAfter)
	d, _ = l.Allow(ctx, "b")
	assert.True(t, d.Allowed)
}

func TestMemoryStoreConcurrentHitsNeverExceedMax(t *testing.T) {
	s := NewMemoryStore(100)
	defer s.Close()
	l := New(s, 3, time.Hour)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := l.Allow(context.Background(), "shared")
			if err == nil && d.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, allowed)
}

// Runs against a real server when REDIS_TEST_ADDR is set.
func TestRedisStoreSlidingWindow(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseWindow(t, NewRedisStore(client, "ratelimit-test"))
}
