package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"qbank/internal/question"
)

// namedBank pairs a bank with its registered name for snapshots.
type namedBank struct {
	Name string        `json:"name"`
	Bank question.Bank `json:"bank"`
}

// Load reads a store snapshot from a JSON file if it exists.
func (s *Store) Load(path string) error {
	if path == "" {
		return fmt.Errorf("snapshot path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var snapshot []namedBank
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banks = map[string]question.Bank{}
	for _, entry := range snapshot {
		s.banks[entry.Name] = entry.Bank
	}
	return nil
}

// Save persists the store to a JSON file using an atomic rename.
func (s *Store) Save(path string) error {
	if path == "" {
		return fmt.Errorf("snapshot path is required")
	}
	snapshot := make([]namedBank, 0)
	for _, name := range s.Names() {
		bank, _ := s.Get(name)
		snapshot = append(snapshot, namedBank{Name: name, Bank: bank})
	}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
