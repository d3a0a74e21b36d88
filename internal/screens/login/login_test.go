package login

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/router"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
)

// memStore is an in-memory auth.Store.
type memStore struct {
	cred *auth.Credential
}

func (m *memStore) Load() (*auth.Credential, error) { return m.cred, nil }
func (m *memStore) Save(c *auth.Credential) error   { m.cred = c; return nil }
func (m *memStore) Clear() error                    { m.cred = nil; return nil }

// mockAuthAPI records which endpoint was hit.
type mockAuthAPI struct {
	cred      *auth.Credential
	err       error
	logins    int
	signups   int
	lastRole  string
	lastEmail string
}

func (m *mockAuthAPI) Login(_ context.Context, role string, req api.AuthRequest) (*auth.Credential, error) {
	m.logins++
	m.lastRole = role
	m.lastEmail = req.Email
	return m.cred, m.err
}

func (m *mockAuthAPI) Signup(_ context.Context, role string, req api.AuthRequest) (*auth.Credential, error) {
	m.signups++
	m.lastRole = role
	m.lastEmail = req.Email
	return m.cred, m.err
}

// stubScreen is the screen shown after sign-in.
type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "home" }
func (stubScreen) Title() string                             { return "Home" }

func testCred() *auth.Credential {
	return &auth.Credential{
		Token: "jwt",
		User:  &auth.User{ID: "u1", Name: "Asha", Email: "asha@example.com", Role: auth.RoleStudent},
	}
}

func filledScreen(apiMock *mockAuthAPI, store *memStore) *LoginScreen {
	s := New(store, apiMock, auth.RoleStudent, func() screen.Screen { return stubScreen{} })
	s.inputs[fieldEmail].SetValue("asha@example.com")
	s.inputs[fieldPassword].SetValue("secret")
	return s
}

func TestLogin_SubmitBlockedWhenIncomplete(t *testing.T) {
	apiMock := &mockAuthAPI{cred: testCred()}
	s := New(&memStore{}, apiMock, auth.RoleStudent, func() screen.Screen { return stubScreen{} })

	if cmd := s.submit(); cmd != nil {
		t.Fatal("expected no submit command with empty fields")
	}
	if apiMock.logins != 0 {
		t.Errorf("logins = %d, want 0", apiMock.logins)
	}
}

func TestLogin_SuccessSavesCredentialAndReplaces(t *testing.T) {
	apiMock := &mockAuthAPI{cred: testCred()}
	store := &memStore{}
	s := filledScreen(apiMock, store)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	_, replaceCmd := s.Update(cmd())

	if store.cred == nil || store.cred.Token != "jwt" {
		t.Fatal("expected the credential to be saved")
	}
	if replaceCmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := replaceCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a ReplaceScreenMsg so Back cannot reach login")
	}
	if apiMock.logins != 1 || apiMock.signups != 0 {
		t.Errorf("logins = %d, signups = %d", apiMock.logins, apiMock.signups)
	}
}

func TestLogin_FailureShowsBackendDetail(t *testing.T) {
	apiMock := &mockAuthAPI{err: &api.APIError{Status: 401, Detail: "Invalid credentials"}}
	s := filledScreen(apiMock, &memStore{})

	s.Update(s.submit()())

	if s.errMsg != "Invalid credentials" {
		t.Errorf("errMsg = %q, want the backend detail", s.errMsg)
	}
	if s.busy {
		t.Error("expected busy to clear after a failure")
	}
}

func TestLogin_SignupModeRequiresName(t *testing.T) {
	apiMock := &mockAuthAPI{cred: testCred()}
	s := filledScreen(apiMock, &memStore{})

	s.signup = true
	if cmd := s.submit(); cmd != nil {
		t.Fatal("signup without a name should not submit")
	}

	s.inputs[fieldName].SetValue("Asha")
	cmd := s.submit()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	cmd()
	if apiMock.signups != 1 {
		t.Errorf("signups = %d, want 1", apiMock.signups)
	}
}

func TestLogin_RoleToggle(t *testing.T) {
	apiMock := &mockAuthAPI{cred: testCred()}
	s := filledScreen(apiMock, &memStore{})

	s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if s.role != auth.RoleTeacher {
		t.Errorf("role = %q, want teacher", s.role)
	}

	s.submit()()
	if apiMock.lastRole != auth.RoleTeacher {
		t.Errorf("lastRole = %q, want teacher", apiMock.lastRole)
	}
}

func TestLogin_ViewRenders(t *testing.T) {
	s := filledScreen(&mockAuthAPI{}, &memStore{})
	if s.View(100, 40) == "" {
		t.Error("login view should not be empty")
	}
	s.signup = true
	if s.View(100, 40) == "" {
		t.Error("signup view should not be empty")
	}
}
