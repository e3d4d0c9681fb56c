package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// FileName is the name of the store file inside the store directory
const FileName = "simulation_control_store.json"

// Store is a JSON key/value file. Every mutation is written to disk before it returns.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// Open loads the store in dir, creating dir when needed. A missing file is an empty store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating store dir %s", dir)
	}
	s := &Store{
		path:   filepath.Join(dir, FileName),
		values: map[string]json.RawMessage{},
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading store %s", s.path)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, errors.Wrapf(err, "decoding store %s", s.path)
		}
	}
	return s, nil
}

// Path returns the location of the store file
func (s *Store) Path() string {
	return s.path
}

// Get decodes the value stored under key into out. found is false when the key is absent.
func (s *Store) Get(key string, out interface{}) (found bool, err error) {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, errors.Wrapf(err, "decoding key %q", key)
	}
	return true, nil
}

// Set stores value under key
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding key %q", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = raw
	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.save(); err != nil {
		s.values[key] = prev
		return err
	}
	return nil
}

// Clear removes every key
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.values
	s.values = map[string]json.RawMessage{}
	if err := s.save(); err != nil {
		s.values = prev
		return err
	}
	return nil
}

// Keys returns the stored keys in sorted order
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// save must be called with mu held
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding store")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".*")
	if err != nil {
		return errors.Wrap(err, "creating temp store file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing store")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "writing store")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replacing store")
}
