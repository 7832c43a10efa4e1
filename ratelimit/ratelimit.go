// Package ratelimit throttles submissions with a sliding window per key.
package ratelimit

import (
	"context"
	"time"
)

// Result is what a Store reports for one hit.
type Result struct {
	Allowed bool
	// Count is the number of hits inside the window after this one.
	Count int
	// Oldest is the earliest hit still inside the window.
	Oldest time.Time
}

// Store records hits. Hit must prune, count and record as one step so
// concurrent callers cannot both take the last slot.
type Store interface {
	Hit(ctx context.Context, key string, now time.Time, window time.Duration, max int) (Result, error)
}

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter struct {
	store  Store
	max    int
	window time.Duration
	now    func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func New(store Store, max int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{store: store, max: max, window: window, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiter) Window() time.Duration { return l.window }

func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	res, err := l.store.Hit(ctx, key, now, l.window, l.max)
	if err != nil {
		return Decision{}, err
	}

	d := Decision{Allowed: res.Allowed, Remaining: l.max - res.Count}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !res.Allowed {
		d.RetryAfter = res.Oldest.Add(l.window).Sub(now)
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
	}
	return d, nil
}
