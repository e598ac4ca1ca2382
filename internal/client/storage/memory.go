package storage

import (
	"context"
	"sync"
)

// Memory keeps values in process memory. Keys are scoped to a namespace the
// same way a browser store is scoped to its origin.
type Memory struct {
	mu        sync.RWMutex
	namespace string
	values    map[string]string
}

func NewMemory(namespace string) *Memory {
	return &Memory{namespace: namespace, values: make(map[string]string)}
}

func (m *Memory) key(k string) string {
	return m.namespace + ":" + k
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[m.key(key)]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.key(key)] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, m.key(key))
	return nil
}

func (m *Memory) Close() error {
	return nil
}
