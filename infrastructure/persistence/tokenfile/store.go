// Package tokenfile persists the session token to a file. It is the only
// state the client keeps between runs.
package tokenfile

import (
	"os"
	"path/filepath"
	"strings"
)

// Store implements ports.TokenStore on a single file.
type Store struct {
	path string
}

// NewStore creates a token store at path. The file is created lazily on
// the first Set.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the persisted token, or "" when none is stored.
func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes the token with owner-only permissions.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Remove deletes the persisted token. Removing an absent token is a no-op.
func (s *Store) Remove() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
