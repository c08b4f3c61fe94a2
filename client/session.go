package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// SessionStore persists the opaque auth token across restarts. Presence of a
// token is the sole "is authenticated" signal; there is no refresh rotation.
type SessionStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// FileSessionStore keeps the token in a single file, the CLI analog of the
// browser's local-storage `auth_token` key.
type FileSessionStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileSessionStore{path: filepath.Join(dir, "auth_token")}, nil
}

func (s *FileSessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (s *FileSessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemorySessionStore holds the token in memory only.
type MemorySessionStore struct {
	mu    sync.Mutex
	token string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemorySessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
