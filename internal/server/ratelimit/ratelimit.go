// Package ratelimit provides per-client, per-endpoint rate limiting on top of
// golang.org/x/time/rate token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// bucket pairs a token bucket with the limit it was built from.
type bucket struct {
	limiter    *rate.Limiter
	capacity   int
	lastAccess time.Time
}

// take consumes one token if available. On denial it reports how long until
// a token would be available.
func (b *bucket) take(now time.Time) (bool, time.Duration) {
	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// status returns the whole tokens left and when the bucket will be full again.
func (b *bucket) status(now time.Time) (int, time.Time) {
	tokens := b.limiter.TokensAt(now)
	remaining := max(0, int(tokens))

	missing := float64(b.capacity) - tokens
	if missing <= 0 {
		return remaining, now
	}
	secondsUntilFull := missing / float64(b.limiter.Limit())
	return remaining, now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	buckets       map[string]*bucket // client:endpoint:method -> bucket
	mu            sync.Mutex
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	limiter := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupTicker = time.NewTicker(config.CleanupInterval)
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup()
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	// Prefix-matched endpoints share one bucket so /jobs/{id}/candidates is
	// limited across all job IDs.
	scope := endpoint
	if endpointConfig.Path != "" {
		scope = endpointConfig.Path
	}

	now := time.Now()
	b := l.getBucket(clientID+":"+scope+":"+method, endpointConfig, now)

	allowed, retryAfter := b.take(now)
	remaining, resetTime := b.status(now)

	return allowed, Info{
		Allowed:    allowed,
		Limit:      endpointConfig.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// getBucket gets or creates the bucket for key and records the access.
func (l *Limiter) getBucket(key string, cfg *EndpointConfig, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		capacity := cfg.Burst
		if capacity <= 0 {
			capacity = cfg.Limit
		}
		every := rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds())
		b = &bucket{
			limiter:  rate.NewLimiter(every, capacity),
			capacity: capacity,
		}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b
}

// cleanup removes old unused buckets to prevent memory leaks.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupBuckets(time.Now().Add(-1 * time.Hour))
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets last used before cutoff.
func (l *Limiter) cleanupBuckets(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
