package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore implements Store with an in-process map, suitable for tests
// and for running without persistence.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get decodes the stored value under key into v.
func (s *MemoryStore) Get(key string, v any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Corrupt value: treated as absent.
		return false, nil
	}
	return true, nil
}

// Set encodes v and stores it under key, overwriting.
func (s *MemoryStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove deletes the value under key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// SetRaw stores an already-encoded value verbatim. Test hook for
// exercising the corrupt-value path.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.values[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}
