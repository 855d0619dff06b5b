package repositories

import (
	"context"
	"sync"
)

// SessionStore persists per-device session values across restarts.
type SessionStore interface {
	Get(ctx context.Context, deviceID, key string) (string, bool, error)
	All(ctx context.Context, deviceID string) (map[string]string, error)
	Set(ctx context.Context, deviceID, key, value string) error
	Remove(ctx context.Context, deviceID, key string) error
	Clear(ctx context.Context, deviceID string) error
}

// MemorySessionStore keeps sessions in process memory. Values are lost on
// restart; it serves development and tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]map[string]string)}
}

func (s *MemorySessionStore) Get(_ context.Context, deviceID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.sessions[deviceID][key]
	return value, ok, nil
}

func (s *MemorySessionStore) All(_ context.Context, deviceID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make(map[string]string, len(s.sessions[deviceID]))
	for k, v := range s.sessions[deviceID] {
		values[k] = v
	}
	return values, nil
}

func (s *MemorySessionStore) Set(_ context.Context, deviceID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[deviceID] == nil {
		s.sessions[deviceID] = make(map[string]string)
	}
	s.sessions[deviceID][key] = value
	return nil
}

func (s *MemorySessionStore) Remove(_ context.Context, deviceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions[deviceID], key)
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, deviceID)
	return nil
}
