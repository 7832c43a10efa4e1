package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// MemoryStore keeps hit timestamps in a bounded LRU. Idle keys expire after
// one window and the least recently used keys are evicted beyond maxKeys.
type MemoryStore struct {
	mu    sync.Mutex
	cache *ccache.Cache[[]time.Time]
}

func NewMemoryStore(maxKeys int64) *MemoryStore {
	if maxKeys <= 0 {
		maxKeys = 10000
	}
	return &MemoryStore{
		cache: ccache.New(ccache.Configure[[]time.Time]().MaxSize(maxKeys)),
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, now time.Time, window time.Duration, max int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hits []time.Time
	if item := s.cache.Get(key); item != nil {
		hits = item.Value()
	}

	cutoff := now.Add(-window)
	kept := make([]time.Time, 0, len(hits)+1)
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	res := Result{Count: len(kept)}
	if len(kept) < max {
		kept = append(kept, now)
		res.Allowed = true
		res.Count = len(kept)
	}
	res.Oldest = now
	if len(kept) > 0 {
		res.Oldest = kept[0]
	}

	s.cache.Set(key, kept, window)
	return res, nil
}

func (s *MemoryStore) Close() {
	s.cache.Stop()
}
