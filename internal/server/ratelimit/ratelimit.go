// Package ratelimit provides per-client token bucket rate limiting for the
// analyzer's HTTP API, with per-endpoint tiers.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for one client/endpoint pair. Tokens refill
// continuously at rate per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	refilled time.Time
	lastUsed time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		rate:     rate,
		refilled: now,
		lastUsed: now,
	}
}

// take refills by elapsed time and consumes one token when available. It
// reports whether the request may proceed, the whole tokens remaining, and
// when the bucket will be full again.
func (b *bucket) take() (ok bool, remaining int, full time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now
	b.lastUsed = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	full = now
	if b.tokens < b.capacity {
		full = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return ok, remaining, full
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed.Before(cutoff)
}

// Info reports the limit state for one request, for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter applies per-endpoint token bucket limits keyed by client.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	config   *Config
	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter. A nil config uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{buckets: make(map[string]*bucket), config: config}
	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.reap(config.CleanupInterval)
	}
	return l
}

// Allow checks whether clientID may hit path with method right now.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	rule := l.config.match(path, method)
	if rule.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + " " + method + " " + rule.Path
	ok, remaining, full := l.bucket(key, rule).take()

	info := Info{Allowed: ok, Limit: rule.Limit, Remaining: remaining, ResetTime: full}
	if !ok {
		if wait := time.Until(full); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return ok, info
}

func (l *Limiter) bucket(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	b := newBucket(capacity, float64(rule.Limit)/rule.Window.Seconds())
	l.buckets[key] = b
	return b
}

// reap drops buckets idle for over an hour so one-off clients do not
// accumulate forever.
func (l *Limiter) reap(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep(time.Now().Add(-time.Hour))
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the reaper goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	if l.stop == nil {
		return
	}
	l.stopOnce.Do(func() { close(l.stop) })
}
