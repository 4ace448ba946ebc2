package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the bearer credential across runs. Implementations
// must tolerate Clear on an already-empty store.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a 0600 file under the user's
// state directory, surviving restarts until logout or rejection.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store backed by the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemTokenStore is an in-memory store for tests and for tokens passed
// via the environment, which are never written to disk.
type MemTokenStore struct {
	mu    sync.Mutex
	token string

	// Clears counts Clear calls so tests can assert a rejected token
	// is discarded exactly once.
	Clears int
}

// NewMemTokenStore creates a store holding the given token.
func NewMemTokenStore(token string) *MemTokenStore {
	return &MemTokenStore{token: token}
}

func (s *MemTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.Clears++
	return nil
}
