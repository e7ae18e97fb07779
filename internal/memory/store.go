package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store persists one Memory per agent identity as a human-readable JSON
// file under a base directory, fully overwritten on every save.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the state file for an identity.
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, id, id+".json")
}

// Load reads the persisted state for an identity. A missing, unreadable
// or malformed file degrades to empty memory; Load never fails.
func (s *Store) Load(id string) *Memory {
	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		return &Memory{}
	}
	var m Memory
	if err := json.Unmarshal(data, &m); err != nil {
		return &Memory{}
	}
	return &m
}

// Save writes the full memory snapshot, replacing any prior state.
// Persistence is best-effort: callers log the error and carry on.
func (s *Store) Save(id string, m *Memory) error {
	path := s.Path(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
