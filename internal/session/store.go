package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Store persists the access token between runs. The lifecycle is explicit:
// Save on sign-in, Clear on sign-out; there is no automatic expiry or
// refresh.
type Store struct {
	path string
}

// NewStore creates a token store backed by the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored credential, or "" when none is stored.
// It satisfies gateway.TokenProvider.
func (s *Store) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the credential, creating the parent directory if needed.
// The file is private to the user.
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("refusing to store an empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	return nil
}

// Clear removes the credential. Clearing an absent credential is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}
	return nil
}
