package history

import (
	"context"
	"sync"
)

// MemoryStore keeps entries in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry // oldest first
	max     int
}

// NewMemoryStore creates a store holding at most max entries
func NewMemoryStore(max int) *MemoryStore {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &MemoryStore{max: max}
}

// Append stores a copy of e and evicts the oldest entries beyond the cap
func (s *MemoryStore) Append(ctx context.Context, e *Entry) error {
	prepare(e)
	c := *e
	if e.Params != nil {
		c.Params = make(map[string]string, len(e.Params))
		for k, v := range e.Params {
			c.Params[k] = v
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, &c)
	if over := len(s.entries) - s.max; over > 0 {
		s.entries = append(s.entries[:0:0], s.entries[over:]...)
	}
	return nil
}

// List returns matching entries, newest first
func (s *MemoryStore) List(ctx context.Context, f Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if !f.matches(e) {
			continue
		}
		c := *e
		out = append(out, &c)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// Count returns the number of stored entries
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Clear removes all entries
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error { return nil }
