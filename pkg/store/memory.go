package store

import "sync"

// Memory is an in-process BlobStore, used by tests and by the CLI when no
// state should survive the process.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saved bool
	saves int
}

// NewMemory returns a Memory holding data, or an empty one when data is nil.
func NewMemory(data []byte) *Memory {
	m := &Memory{}
	if data != nil {
		m.data = append([]byte(nil), data...)
		m.saved = true
	}
	return m
}

// Load returns a copy of the last saved blob.
func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

// Save replaces the blob.
func (m *Memory) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.saved = true
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
