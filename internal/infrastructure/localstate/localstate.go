package localstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"souqtech/pkg/errors"
)

// Store is a small key-value state file for device-local data (cart,
// favorites, admin flag, language). It is read once at startup and written
// back on every change, mirroring browser local storage semantics: values
// are opaque strings owned by the caller.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

// Open loads the state file at path, creating an empty store when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Internal("Failed to read state file", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, errors.Internal("Failed to parse state file", err)
		}
	}

	return s, nil
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

// flush writes the whole map atomically. Caller holds the lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Internal("Failed to encode state file", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Internal("Failed to create state directory", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Internal("Failed to write state file", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Internal("Failed to replace state file", err)
	}

	return nil
}
