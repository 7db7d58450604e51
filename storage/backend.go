package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"jumpbot/model"
)

// Backend persists the full panel record collection. Save replaces the whole
// snapshot; partial updates are not part of the contract.
type Backend interface {
	Load() ([]model.PanelRecord, error)
	Save(records []model.PanelRecord) error
}

// FileBackend stores the collection as a single JSON document. Writes go to a
// temporary file in the same directory followed by a rename, so a crash
// mid-write leaves the previous snapshot intact.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the record collection. A missing file is an empty collection.
func (f *FileBackend) Load() ([]model.PanelRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read panel data file: %w", err)
	}

	var doc model.PanelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal panel data: %w", err)
	}
	return doc.JumpSets, nil
}

func (f *FileBackend) Save(records []model.PanelRecord) error {
	doc := model.PanelDocument{JumpSets: records}
	if doc.JumpSets == nil {
		doc.JumpSets = []model.PanelRecord{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal panel data: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".jump_sets-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write panel data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace panel data file: %w", err)
	}
	return nil
}

// MemoryBackend keeps the collection in memory. It backs the record store in
// tests so service and reconciler logic can run without touching disk.
type MemoryBackend struct {
	mu      sync.Mutex
	records []model.PanelRecord
	saves   int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load() ([]model.PanelRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.PanelRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryBackend) Save(records []model.PanelRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make([]model.PanelRecord, len(records))
	copy(m.records, records)
	m.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
