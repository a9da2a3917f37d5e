package session

import "time"

// Option applies a configuration option to the in-memory store.
type Option func(*inMemoryStore)

// WithCapacity sets the maximum number of live sessions. Creating a session at capacity
// evicts the oldest one. capacity <= 0 means unbounded.
func WithCapacity(capacity int) Option {
	return func(s *inMemoryStore) {
		s.capacity = capacity
	}
}

// WithTTL sets how long a session survives without being read. ttl <= 0 disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *inMemoryStore) {
		s.ttl = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *inMemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOnRemove registers a callback invoked, outside the store lock, for every session
// dropped by eviction or expiry.
func WithOnRemove(fn func(Session, Reason)) Option {
	return func(s *inMemoryStore) {
		s.onRemove = fn
	}
}
