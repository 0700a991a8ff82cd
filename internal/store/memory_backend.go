package store

import "sync"

// MemoryBackend keeps values in a map. It is used for tests and for throwaway
// sessions (storage.backend=memory). The error fields let tests simulate
// failing storage.
type MemoryBackend struct {
	mu     sync.Mutex
	values map[string][]byte

	GetError error
	SetError error
	// SetCalls counts every Set attempt, failed or not.
	SetCalls int
}

// NewMemoryBackend returns an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	// Return a copy to avoid external modifications
	return append([]byte(nil), value...), nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls++
	if m.SetError != nil {
		return m.SetError
	}
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}

// Keys returns the number of stored keys
func (m *MemoryBackend) Keys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}
