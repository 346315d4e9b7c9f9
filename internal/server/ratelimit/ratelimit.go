// Package ratelimit limits request rates per client and endpoint using
// fixed-window keyed counters. The counter store is an interface so a
// deployment can back it with an external cache; the default is in-process.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of one counter check.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Counter is the keyed-counter abstraction the limiter sits on: check the
// count for a key within its current window and increment it when allowed.
type Counter interface {
	CheckAndIncrement(key string, limit int, window time.Duration) Decision
}

// purger is implemented by counter stores that can drop expired entries.
type purger interface {
	PurgeExpired()
}

type windowEntry struct {
	count       int
	windowStart time.Time
	window      time.Duration
}

// WindowCounter is the in-process Counter: one fixed window per key, counts
// reset when the window rolls over. The clock is injectable for tests.
type WindowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

// NewWindowCounter creates an in-process counter store. A nil clock uses
// time.Now.
func NewWindowCounter(clock func() time.Time) *WindowCounter {
	if clock == nil {
		clock = time.Now
	}
	return &WindowCounter{
		entries: make(map[string]*windowEntry),
		now:     clock,
	}
}

// CheckAndIncrement counts a request against the key's current window. The
// count is only incremented when the request is allowed, so denied requests
// do not extend the lockout.
func (c *WindowCounter) CheckAndIncrement(key string, limit int, window time.Duration) Decision {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok || now.Sub(e.windowStart) >= window {
		e = &windowEntry{windowStart: now, window: window}
		c.entries[key] = e
	}

	resetAt := e.windowStart.Add(window)
	if e.count >= limit {
		return Decision{Allowed: false, Remaining: 0, ResetAt: resetAt}
	}

	e.count++
	return Decision{
		Allowed:   true,
		Remaining: limit - e.count,
		ResetAt:   resetAt,
	}
}

// PurgeExpired drops entries whose window has already rolled over. Expired
// entries would be reset on next access anyway; purging just bounds memory
// for clients that never return.
func (c *WindowCounter) PurgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.windowStart) >= e.window {
			delete(c.entries, key)
		}
	}
}

// Info describes the rate limit state for one request; the server layer turns
// it into X-RateLimit-* headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter applies per-endpoint rate tiers to client requests.
type Limiter struct {
	config        *Config
	counter       Counter
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Allowlist       map[string]bool
	Denylist        map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewLimiter creates a limiter backed by the in-process counter store.
func NewLimiter(config *Config) *Limiter {
	return NewLimiterWithCounter(config, NewWindowCounter(nil))
}

// NewLimiterWithCounter creates a limiter on an injected counter store.
func NewLimiterWithCounter(config *Config, counter Counter) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Allowlist:       make(map[string]bool),
			Denylist:        make(map[string]bool),
		}
	}

	l := &Limiter{
		config:  config,
		counter: counter,
	}

	// Expired-entry cleanup only applies to stores that hold state in-process.
	if p, ok := counter.(purger); ok && config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go func() {
			for {
				select {
				case <-l.cleanupTicker.C:
					p.PurgeExpired()
				case <-l.cleanupStop:
					return
				}
			}
		}()
	}

	return l
}

// Allow checks whether the client may call the endpoint, counting the request
// against its tier when it may. Allowlisted clients and unlimited endpoints
// bypass counting; denylisted clients are always refused.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	if l.config.Allowlist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Denylist[clientID] {
		return false, Info{Allowed: false}
	}

	tier := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if tier == nil {
		tier = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
		}
	}

	// Unlimited endpoint (health check).
	if tier.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	decision := l.counter.CheckAndIncrement(key, tier.Limit, tier.Window)

	var retryAfter time.Duration
	if !decision.Allowed {
		retryAfter = time.Until(decision.ResetAt)
		if retryAfter < 0 {
			retryAfter = 0
		}
	}

	return decision.Allowed, Info{
		Allowed:    decision.Allowed,
		Limit:      tier.Limit,
		Remaining:  decision.Remaining,
		ResetTime:  decision.ResetAt,
		RetryAfter: retryAfter,
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
