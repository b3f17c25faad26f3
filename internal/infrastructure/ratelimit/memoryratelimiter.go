package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter keeps per-key request timestamps in process memory.
// Used when Redis is disabled; limits are per instance, not cluster-wide.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string, config Config) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Trim everything older than the widest window we track.
	timestamps := l.entries[key]
	cutoff := now.Add(-time.Hour)
	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if config.RequestsPerMinute > 0 {
		minuteStart := now.Add(-time.Minute)
		count := 0
		for _, ts := range kept {
			if ts.After(minuteStart) {
				count++
			}
		}
		if count >= config.RequestsPerMinute {
			l.entries[key] = kept
			return false, nil
		}
	}

	if config.RequestsPerHour > 0 && len(kept) >= config.RequestsPerHour {
		l.entries[key] = kept
		return false, nil
	}

	l.entries[key] = append(kept, now)
	return true, nil
}

func (l *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}
