package kv

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

type storeFile struct {
	Version int               `yaml:"version"`
	Values  map[string]string `yaml:"values"`
}

// File keeps every key in one YAML document and rewrites it on each Set.
type File struct {
	path   string
	values map[string]string
	mu     sync.RWMutex
}

// OpenFile loads path if it exists. An unreadable document yields an empty
// store together with the parse error; the next Set overwrites the file.
func OpenFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("failed to read storage file: %w", err)
	}

	var doc storeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return f, fmt.Errorf("failed to parse storage file %q: %w", path, err)
	}
	if doc.Values != nil {
		f.values = doc.Values
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := maps.Clone(f.values)
	next[key] = value

	data, err := yaml.Marshal(storeFile{Version: 1, Values: next})
	if err != nil {
		return err
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return err
	}

	f.values = next
	return nil
}
