package session

import "sync"

// MemStore is an in-memory Store used in tests and anywhere persistence is
// unwanted.
type MemStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{entries: map[string]string{}}
}

func (ms *MemStore) Get(key string) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	value, ok := ms.entries[key]
	return value, ok, nil
}

func (ms *MemStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries[key] = value
	return nil
}

func (ms *MemStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.entries, key)
	return nil
}
