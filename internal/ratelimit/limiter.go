package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands each client address its own token bucket. The generator can
// mint at most 2^12 IDs per millisecond anyway; this keeps a single greedy
// client from monopolizing that budget.
type Limiter struct {
	enabled     bool
	limit       rate.Limit
	burst       int
	buckets     map[string]*rate.Limiter
	mu          sync.Mutex
	cleanupDone chan struct{}
}

func NewLimiter(requestsPerSecond, burst int, enabled bool) *Limiter {
	l := &Limiter{
		enabled:     enabled,
		limit:       rate.Limit(requestsPerSecond),
		burst:       burst,
		buckets:     make(map[string]*rate.Limiter),
		cleanupDone: make(chan struct{}),
	}

	if enabled {
		go l.cleanup()
	}

	return l
}

func (l *Limiter) Allow(key string) bool {
	if !l.enabled {
		return true
	}

	l.mu.Lock()
	bucket, exists := l.buckets[key]
	if !exists {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.Allow()
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			l.buckets = make(map[string]*rate.Limiter)
			l.mu.Unlock()
		case <-l.cleanupDone:
			return
		}
	}
}

func (l *Limiter) Close() {
	close(l.cleanupDone)
}
