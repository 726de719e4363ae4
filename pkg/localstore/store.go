// Package localstore is the guest-side persistence layer: a namespaced
// key -> JSON-collection store with browser-localStorage semantics. Every write
// replaces the whole serialized collection for its key; the last writer on a key
// wins. An optional file snapshot keeps guest data across restarts.
package localstore

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

const (
	TripsKeyPrefix    = "wanderlust_trips_"
	ExpensesKeyPrefix = "wanderlust_expenses_"
	PackingKeyPrefix  = "wanderlust_packing_"
	OfflineKeyPrefix  = "wanderlust_offline_"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
	path string
}

// New creates a store. When path is non-empty the store loads an existing
// snapshot from it and rewrites it after every mutation.
func New(path string) *Store {
	s := &Store{
		data: make(map[string]json.RawMessage),
		path: path,
	}
	if path != "" {
		s.load()
	}
	return s
}

// Get unmarshals the collection stored under key into out. A missing key leaves
// out untouched and returns false.
func (s *Store) Get(key string, out interface{}) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("localstore: corrupt entry %q dropped: %v", key, err)
		s.Delete(key)
		return false
	}
	return true
}

// Set serializes value and replaces whatever the key held before.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()

	s.snapshot()
	return nil
}

func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	s.snapshot()
}

// Keys returns every key carrying the given prefix.
func (s *Store) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("localstore: cannot read %s: %v", s.path, err)
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("localstore: corrupt snapshot %s ignored: %v", s.path, err)
	}
}

func (s *Store) snapshot() {
	if s.path == "" {
		return
	}

	s.mu.RLock()
	raw, err := json.Marshal(s.data)
	s.mu.RUnlock()

	if err != nil {
		log.Printf("localstore: snapshot marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		log.Printf("localstore: snapshot write failed: %v", err)
	}
}
