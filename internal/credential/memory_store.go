package credential

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	sid := sessionFrom(ctx)
	if sid == "" {
		return "", false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sessions[sid][key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	sid := sessionFrom(ctx)
	if sid == "" {
		return ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sid]
	if !ok {
		values = make(map[string]string)
		s.sessions[sid] = values
	}
	values[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys ...string) error {
	sid := sessionFrom(ctx)
	if sid == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sid]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(values, k)
	}
	if len(values) == 0 {
		delete(s.sessions, sid)
	}
	return nil
}
