// Package store persists the staging-name to work-repository mappings as
// a single JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Record is the mapping entry kept per staging name.
type Record struct {
	WorkName       string `json:"work_name"`
	WorkPath       string `json:"work_path"`
	StagingPath    string `json:"staging_path"`
	BaseBranch     string `json:"base_branch"`
	StagingBranch  string `json:"staging_branch,omitempty"`
	Remote         string `json:"remote"`
	LastTempBranch string `json:"last_temp_branch,omitempty"`
}

// Mappings is the in-memory form of the store file.
type Mappings struct {
	Projects map[string]Record `json:"projects"`
}

// Get returns the record for the given staging name.
func (m *Mappings) Get(name string) (Record, bool) {
	rec, ok := m.Projects[name]
	return rec, ok
}

// Put inserts or replaces the record for the given staging name.
func (m *Mappings) Put(name string, rec Record) {
	if m.Projects == nil {
		m.Projects = make(map[string]Record)
	}
	m.Projects[name] = rec
}

// Names returns the staging names in sorted order.
func (m *Mappings) Names() []string {
	names := make([]string, 0, len(m.Projects))
	for name := range m.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store reads and writes the mapping file at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the mapping file. A missing file yields empty mappings; a
// file that exists but is not valid JSON is an error.
func (s *Store) Load() (*Mappings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Mappings{Projects: make(map[string]Record)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var m Mappings
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("mapping file %s is not valid JSON: %w", s.path, err)
	}
	if m.Projects == nil {
		m.Projects = make(map[string]Record)
	}
	return &m, nil
}

// Save writes the mappings atomically: the file is written to a
// temporary sibling and renamed into place, so a crash cannot truncate
// an existing store.
func (s *Store) Save(m *Mappings) (retErr error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mappings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing mappings: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing mappings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
