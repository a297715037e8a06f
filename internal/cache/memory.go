package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value   []byte
	expires time.Time
}

const (
	sweepInterval     = time.Minute
	defaultMaxEntries = 50000
)

// Memory is an in-process Cache. Expired entries are dropped on read and by
// a sweep that Set runs at most once per sweepInterval. When maxEntries is
// reached the entry closest to expiry is evicted.
type Memory struct {
	mu         sync.Mutex
	entries    map[string]entry
	now        func() time.Time
	nextSweep  time.Time
	maxEntries int
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now, maxEntries: defaultMaxEntries}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

// Set stores value under key. A ttl of zero or less keeps the entry forever.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := entry{value: append([]byte(nil), value...)}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if ttl > 0 {
		e.expires = now.Add(ttl)
	}
	if now.After(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(sweepInterval)
	}
	if _, exists := m.entries[key]; !exists && m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.sweep(now)
		if len(m.entries) >= m.maxEntries {
			m.evictOne()
		}
	}
	m.entries[key] = e
	return nil
}

func (m *Memory) sweep(now time.Time) {
	for k, e := range m.entries {
		if !e.expires.IsZero() && !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
}

// evictOne drops the entry that expires first; entries without a ttl go last.
func (m *Memory) evictOne() {
	var victim string
	var soonest time.Time
	found := false
	for k, e := range m.entries {
		if !found {
			victim, soonest, found = k, e.expires, true
			continue
		}
		switch {
		case e.expires.IsZero():
		case soonest.IsZero() || e.expires.Before(soonest):
			victim, soonest = k, e.expires
		}
	}
	if found {
		delete(m.entries, victim)
	}
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ Cache = (*Memory)(nil)
