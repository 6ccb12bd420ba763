// SPDX-License-Identifier: MIT

package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// entry is the on-disk layout of one stored value.
type entry struct {
	Type string         `yaml:"type"`
	Data map[string]any `yaml:"data"`
}

// Store is an in-memory collection of encoded values keyed by name.
// It is not safe for concurrent mutation.
type Store struct {
	entries map[string]entry
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Put encodes v and stores it under key, replacing any previous entry.
func (s *Store) Put(key string, v Persistable) error {
	d, err := v.ReduceToDict()
	if err != nil {
		return fmt.Errorf("archive: put %q: %w", key, err)
	}
	s.entries[key] = entry{Type: v.PersistName(), Data: d}

	return nil
}

// Get decodes the value stored under key with its registered decoder.
func (s *Store) Get(key string) (Persistable, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	decode, err := lookup(e.Type)
	if err != nil {
		return nil, err
	}
	v, err := decode(e.Data)
	if err != nil {
		return nil, fmt.Errorf("archive: get %q: %w", key, err)
	}

	return v, nil
}

// Type returns the registered type name of the entry under key.
func (s *Store) Type(key string) (string, bool) {
	e, ok := s.entries[key]

	return e.Type, ok
}

// Delete removes key; it is a no-op when key is absent.
func (s *Store) Delete(key string) { delete(s.entries, key) }

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Encode writes the store as a YAML document.
func (s *Store) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.entries); err != nil {
		return fmt.Errorf("archive: encode: %w", err)
	}

	return enc.Close()
}

// Decode replaces the store contents with the YAML document read from r.
func (s *Store) Decode(r io.Reader) error {
	raw := make(map[string]entry)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return fmt.Errorf("archive: decode: %v: %w", err, ErrMalformed)
	}
	for k, e := range raw {
		if e.Type == "" || e.Data == nil {
			return fmt.Errorf("archive: entry %q: %w", k, ErrMalformed)
		}
	}
	s.entries = raw

	return nil
}

// Save writes the store to path.
func (s *Store) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads a store previously written by Save.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s := NewStore()
	if err = s.Decode(f); err != nil {
		return nil, err
	}

	return s, nil
}
