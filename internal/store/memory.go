package store

import (
	"sync"
	"time"
)

// Memory is an in-memory store. It backs sessions that are not persisted.
type Memory struct {
	mu   sync.RWMutex
	data map[string]Session
	now  func() time.Time
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]Session),
		now:  time.Now,
	}
}

// Get retrieves a session by name.
func (m *Memory) Get(name string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.data[name]; ok {
		return &s, nil
	}
	return nil, nil
}

// Put stores a copy of s by name.
func (m *Memory) Put(name string, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *s
	stored.UpdatedAt = m.now().UTC()
	m.data[name] = stored
	return nil
}

// Delete removes a session by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, name)
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
