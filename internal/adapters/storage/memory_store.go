package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/ports"
)

// MemoryStore is a map-backed ports.SessionStore that lives as long as the process
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]map[string][]byte
}

var _ ports.SessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[sessionID][key]
	if !ok {
		return nil, fmt.Errorf("%s for session %s: %w", key, sessionID, domain.ErrStateNotFound)
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryStore) Put(ctx context.Context, sessionID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.values[sessionID]
	if !ok {
		session = make(map[string][]byte)
		m.values[sessionID] = session
	}
	session[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values[sessionID], key)
	return nil
}

func (m *MemoryStore) Keys(ctx context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values[sessionID]))
	for key := range m.values[sessionID] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
