package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore -> implementasi in-memory untuk test. Nilai disimpan
// sebagai JSON supaya round-trip serialisasinya sama persis dengan
// store persisten.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
	rev  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.rev++
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.rev++
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Revision() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev, nil
}
