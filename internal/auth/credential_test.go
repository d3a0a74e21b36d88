package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.json")
	store := NewFileStore(path)

	cred := &Credential{
		Token: "tok",
		User:  &User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: RoleStudent},
	}
	if err := store.Save(cred); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Token != "tok" {
		t.Fatalf("loaded credential = %+v", got)
	}
	if got.User == nil || got.User.Role != RoleStudent || got.User.Name != "Asha" {
		t.Errorf("loaded user = %+v", got.User)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = store.Load()
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got != nil {
		t.Errorf("credential survived clear: %+v", got)
	}
}

func TestFileStore_MissingFileIsAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil credential, got %+v", got)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("clear on missing file: %v", err)
	}
}

func TestFileStore_CorruptFileTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("corrupt file should read as absent, got %+v", got)
	}
}

func TestFileStore_MalformedUserTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.json")
	if err := os.WriteFile(path, []byte(`{"token":"tok","user":"not an object"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Token != "tok" {
		t.Fatalf("token should survive, got %+v", got)
	}
	if got.User != nil {
		t.Errorf("malformed user should be absent, got %+v", got.User)
	}
}
