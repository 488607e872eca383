// Package kvstore is a small durable key-value store backed by one JSON file.
//
// Keys are strings; values are any JSON-serializable Go value. The whole
// file is loaded on Open and rewritten on every dump:
//
//	{
//	  "1": "Buy milk",
//	  "2": "Call mom"
//	}
//
// With the AutoDump policy each successful Set or Remove is flushed to disk
// before it returns. Writes go to a temp file in the same directory which
// is synced and renamed over the target, so a crash leaves either the old
// or the new file.
package kvstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"

	"todo/internal/logging"
)

// DumpPolicy controls when changes are written to disk.
type DumpPolicy int

const (
	// AutoDump writes the file after every mutation.
	AutoDump DumpPolicy = iota

	// DumpUponRequest writes only on Dump or Close.
	DumpUponRequest
)

// ErrClosed is returned by mutations on a closed store.
var ErrClosed = errors.New("store closed")

// Options configures Open.
type Options struct {
	Policy DumpPolicy

	// Schema is a JSON Schema document the file must satisfy when loaded.
	// Empty disables validation.
	Schema string

	Logger *log.Logger
}

// Store is an open key-value file. It is not safe for concurrent use.
type Store struct {
	path   string
	policy DumpPolicy
	logger *log.Logger

	data   map[string]json.RawMessage
	dirty  bool
	closed bool
}

// Open loads the store at path. A missing or empty file yields an empty
// store; the file is created on the first dump.
func Open(path string, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	s := &Store{
		path:   path,
		policy: opts.Policy,
		logger: logger.With("store", path),
		data:   make(map[string]json.RawMessage),
	}

	if err := s.load(opts.Schema); err != nil {
		return nil, err
	}
	s.logger.Debug("store opened", "keys", len(s.data))
	return s, nil
}

func (s *Store) load(schema string) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	if s.data == nil {
		// "null" on disk
		s.data = make(map[string]json.RawMessage)
	}

	if schema != "" {
		if err := validate(s.path, schema, raw); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get decodes the value stored under key into v.
// Returns false if the key does not exist.
func (s *Store) Get(key string, v any) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode key %q: %w", key, err)
	}
	return true, nil
}

// Set stores v under key. Under AutoDump the file is written before Set
// returns; if that write fails the in-memory value is restored.
func (s *Store) Set(key string, v any) error {
	if s.closed {
		return ErrClosed
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}

	prev, existed := s.data[key]
	s.data[key] = raw
	if err := s.changed(); err != nil {
		if existed {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	s.logger.Debug("set", "key", key)
	return nil
}

// Remove deletes key. Returns false if it did not exist.
func (s *Store) Remove(key string) (bool, error) {
	if s.closed {
		return false, ErrClosed
	}
	prev, ok := s.data[key]
	if !ok {
		return false, nil
	}

	delete(s.data, key)
	if err := s.changed(); err != nil {
		s.data[key] = prev
		return false, err
	}
	s.logger.Debug("removed", "key", key)
	return true, nil
}

// Exists reports whether key is present.
func (s *Store) Exists(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.data)
}

// Keys returns all keys in lexicographic order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Iterate calls fn for every entry in key order, stopping at the first error.
func (s *Store) Iterate(fn func(key string, raw json.RawMessage) error) error {
	for _, k := range s.Keys() {
		if err := fn(k, s.data[k]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) changed() error {
	s.dirty = true
	if s.policy == AutoDump {
		return s.Dump()
	}
	return nil
}

// Dump writes the store to disk.
func (s *Store) Dump() error {
	if s.closed {
		return ErrClosed
	}
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.path, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.dirty = false
	s.logger.Debug("store dumped", "keys", len(s.data))
	return nil
}

// Close writes pending changes and releases the store.
// Calling Close more than once is a no-op.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	var err error
	if s.dirty {
		err = s.Dump()
	}
	s.closed = true
	return err
}
