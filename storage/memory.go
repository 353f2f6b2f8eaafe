package storage

import "sync"

// Memory is a map-backed KV used by tests and anywhere a throwaway
// store is enough.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(sessionID, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[sessionID][key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(sessionID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[sessionID] == nil {
		m.data[sessionID] = make(map[string][]byte)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[sessionID][key] = stored
	return nil
}
