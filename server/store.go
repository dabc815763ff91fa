//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/simukka/fluid-sketch/fluid"
)

// Store persists the last value of every edited option as a JSON object,
// so a restarted dev server replays the session's tuning.
type Store struct {
	path string

	mu     sync.Mutex
	values map[fluid.Field]interface{}
}

// OpenStore loads the file at path. A missing file yields an empty store.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[fluid.Field]interface{})}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return s, nil
}

// Edits returns the stored values as edits, ordered by field name.
func (s *Store) Edits() []fluid.Edit {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]fluid.Edit, 0, len(s.values))
	for f, v := range s.values {
		out = append(out, fluid.Edit{Field: f, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Put records e and rewrites the file.
func (s *Store) Put(e fluid.Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[e.Field] = e.Value
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".fluid-options-*")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
