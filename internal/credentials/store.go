// Package credentials persists the bearer token issued on login. The token
// is the only durable client-side state: its absence means "unauthenticated".
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir    = "talentrag"
	tokenFile = "token"
)

// Store reads and writes the token file. The token is an opaque blob; the
// store never validates its structure.
type Store struct {
	path string
}

// NewStore places the token under the user's config directory.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving config directory: %w", err)
	}

	return NewStoreAt(filepath.Join(dir, appDir, tokenFile)), nil
}

// NewStoreAt uses an explicit token file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Set overwrites any previously stored token.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(strings.TrimSpace(token)), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	return nil
}

// Get returns the stored token, or false when no usable token is present.
// It never touches the network, so it is safe at startup.
func (s *Store) Get() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}

	return nil
}
