package kvstore

import "slices"

// Memory is an in-memory Store, the substitution point for tests.
type Memory struct {
	values map[string][]byte
	// Puts counts completed writes, letting tests assert that every
	// mutation mirrored state.
	Puts int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get reads a key.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Put overwrites a key.
func (m *Memory) Put(key string, value []byte) error {
	m.values[key] = slices.Clone(value)
	m.Puts++
	return nil
}

// Delete removes a key.
func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
