package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// User is the persisted identity returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credential is the persisted proof of authentication: the bearer token
// plus the user object the backend returned with it.
type Credential struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Store is the explicit read/write/clear interface for the persisted
// credential. Components that need the credential take a Store rather
// than reading ambient state.
type Store interface {
	// Load returns the stored credential, or nil if none is stored.
	// A corrupt credential file is treated as absent, not as an error.
	Load() (*Credential, error)

	// Save persists the credential, replacing any existing one.
	Save(cred *Credential) error

	// Clear removes the stored credential. Clearing an empty store is
	// not an error.
	Clear() error
}

// FileStore persists the credential as a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCredentialPath resolves the credential file location in priority
// order: TUTOR_CREDENTIAL env var, then $XDG_DATA_HOME/ai-tutor, then
// ~/.local/share/ai-tutor.
func DefaultCredentialPath() (string, error) {
	if p := os.Getenv("TUTOR_CREDENTIAL"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "ai-tutor", "credential.json"), nil
}

func (s *FileStore) Load() (*Credential, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credential: %w", err)
	}

	// A file that does not parse is indistinguishable from no login:
	// callers redirect to login rather than crash.
	var raw struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil
	}
	if raw.Token == "" {
		return nil, nil
	}

	cred := &Credential{Token: raw.Token}
	if len(raw.User) > 0 {
		var u User
		if err := json.Unmarshal(raw.User, &u); err == nil {
			cred.User = &u
		}
	}
	return cred, nil
}

func (s *FileStore) Save(cred *Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	b, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credential: %w", err)
	}
	return nil
}
