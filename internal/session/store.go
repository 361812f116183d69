package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store abstracts the key-value slot the session state lives in.
// Implementations can be file-based, database, etc. The in-memory
// implementation backs tests.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists keys as a flat JSON object in a single file. The file is
// rewritten on every change; entries are small and writes are rare.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return fs.write(entries)
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return fs.write(entries)
}

func (fs *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	return entries, nil
}

func (fs *FileStore) write(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, data, 0600)
}
