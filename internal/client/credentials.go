package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Credential is the session the client holds between login and logout.
type Credential struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
}

// CredentialStore persists the current Credential. Implementations must be
// safe for concurrent use.
type CredentialStore interface {
	Load() (Credential, bool)
	Save(cred Credential) error
	// CompareAndSwap stores next only if the current credential equals old.
	// It reports whether the swap happened.
	CompareAndSwap(old, next Credential) (bool, error)
	// CompareAndClear removes the credential only if it still equals old.
	CompareAndClear(old Credential) (bool, error)
	Clear() error
}

type MemoryStore struct {
	mu   sync.RWMutex
	cred *Credential
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cred == nil {
		return Credential{}, false
	}
	return *s.cred, true
}

func (s *MemoryStore) Save(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = &cred
	return nil
}

func (s *MemoryStore) CompareAndSwap(old, next Credential) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cred == nil || *s.cred != old {
		return false, nil
	}
	s.cred = &next
	return true, nil
}

func (s *MemoryStore) CompareAndClear(old Credential) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cred == nil || *s.cred != old {
		return false, nil
	}
	s.cred = nil
	return true, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = nil
	return nil
}

// FileStore keeps the credential as JSON on disk with 0600 permissions.
// Writes go to a temp file that is renamed over the target.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, err := s.read()
	if err != nil {
		return Credential{}, false
	}
	return cred, true
}

func (s *FileStore) Save(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(cred)
}

func (s *FileStore) CompareAndSwap(old, next Credential) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if current != old {
		return false, nil
	}
	if err := s.write(next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) CompareAndClear(old Credential) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if current != old {
		return false, nil
	}
	if err := s.remove(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove()
}

func (s *FileStore) remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func (s *FileStore) read() (Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credential{}, err
	}
	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credential{}, fmt.Errorf("decode credentials: %w", err)
	}
	return cred, nil
}

func (s *FileStore) write(cred Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}
