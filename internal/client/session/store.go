// Package session persists the authenticated session between runs: the
// terminal counterpart of the browser's localStorage holding token,
// username and wallet balance.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"qkart-cli/internal/client/models"
)

// Store reads and writes a single session as a JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted session. A missing file is not an error; it
// yields an anonymous session.
func (s *Store) Load() (models.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("reading session file: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return models.Session{}, fmt.Errorf("parsing session file: %w", err)
	}
	return sess, nil
}

// Save writes the session, creating parent directories as needed. The file
// holds a bearer token, hence 0600.
func (s *Store) Save(sess models.Session) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating session dir: %w", err)
		}
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent file succeeds.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
