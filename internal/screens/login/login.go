package login

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/router"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/layout"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// authAPI is the slice of the backend client the login screen needs.
type authAPI interface {
	Login(ctx context.Context, role string, req api.AuthRequest) (*auth.Credential, error)
	Signup(ctx context.Context, role string, req api.AuthRequest) (*auth.Credential, error)
}

// authDoneMsg carries the result of a login or signup request.
type authDoneMsg struct {
	Cred *auth.Credential
	Err  error
}

// LoginScreen collects credentials and signs the learner in. On success
// the stored credential is written and the screen is replaced, so Back
// can never return here.
type LoginScreen struct {
	creds  auth.Store
	client authAPI
	nextFn func() screen.Screen
	inputs [fieldCount]components.TextInput
	focus  int
	role   string
	signup bool
	busy   bool
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen. next builds the screen shown after a
// successful sign-in.
func New(creds auth.Store, client authAPI, role string, next func() screen.Screen) *LoginScreen {
	if role == "" {
		role = auth.RoleStudent
	}
	s := &LoginScreen{
		creds:  creds,
		client: client,
		nextFn: next,
		role:   role,
		focus:  fieldEmail,
	}
	s.inputs[fieldName] = components.NewTextInput("Name", "Aarav Sharma", false)
	s.inputs[fieldEmail] = components.NewTextInput("Email", "you@example.com", false)
	s.inputs[fieldPassword] = components.NewTextInput("Password", "", true)
	s.inputs[s.focus].Focus()
	return s
}

func (s *LoginScreen) Init() tea.Cmd {
	return nil
}

func (s *LoginScreen) Title() string {
	if s.signup {
		return "Sign up"
	}
	return "Sign in"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+R", Description: "Role"},
		{Key: "Ctrl+S", Description: "Login/Signup"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = errorText(msg.Err)
			return s, nil
		}
		if err := s.creds.Save(msg.Cred); err != nil {
			s.errMsg = "could not save credential: " + err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.nextFn()}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			s.setFocus(s.nextField(1))
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.nextField(-1))
			return s, nil
		case "ctrl+r":
			if s.role == auth.RoleStudent {
				s.role = auth.RoleTeacher
			} else {
				s.role = auth.RoleStudent
			}
			return s, nil
		case "ctrl+s":
			s.signup = !s.signup
			s.errMsg = ""
			if !s.signup && s.focus == fieldName {
				s.setFocus(fieldEmail)
			}
			return s, nil
		case "enter":
			return s, s.submit()
		}

		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *LoginScreen) setFocus(f int) {
	s.inputs[s.focus].Blur()
	s.focus = f
	s.inputs[s.focus].Focus()
}

// nextField moves focus, skipping Name outside signup mode.
func (s *LoginScreen) nextField(dir int) int {
	f := s.focus
	for i := 0; i < fieldCount; i++ {
		f = (f + dir + fieldCount) % fieldCount
		if f == fieldName && !s.signup {
			continue
		}
		return f
	}
	return s.focus
}

// submit validates the form and fires the auth request. Validation
// failures keep submission disabled rather than erroring.
func (s *LoginScreen) submit() tea.Cmd {
	if !s.formComplete() {
		return nil
	}

	req := api.AuthRequest{
		Name:     strings.TrimSpace(s.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(s.inputs[fieldEmail].Value()),
		Password: s.inputs[fieldPassword].Value(),
	}
	role := s.role
	signup := s.signup

	s.busy = true
	s.errMsg = ""

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		var cred *auth.Credential
		var err error
		if signup {
			cred, err = s.client.Signup(ctx, role, req)
		} else {
			cred, err = s.client.Login(ctx, role, req)
		}
		return authDoneMsg{Cred: cred, Err: err}
	}
}

// formComplete checks the required fields for the current mode.
func (s *LoginScreen) formComplete() bool {
	if strings.TrimSpace(s.inputs[fieldEmail].Value()) == "" {
		return false
	}
	if s.inputs[fieldPassword].Value() == "" {
		return false
	}
	if s.signup && strings.TrimSpace(s.inputs[fieldName].Value()) == "" {
		return false
	}
	return true
}

func (s *LoginScreen) View(width, height int) string {
	title := "Sign in to continue"
	if s.signup {
		title = "Create your account"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title) + "\n\n")
	b.WriteString(theme.Subtitle.Render("Role: "+s.role) + "\n\n")

	for i := 0; i < fieldCount; i++ {
		if i == fieldName && !s.signup {
			continue
		}
		b.WriteString(s.inputs[i].View() + "\n\n")
	}

	button := components.Button{Label: "Submit", Active: s.formComplete() && !s.busy}
	b.WriteString(button.View() + "\n\n")

	if s.busy {
		b.WriteString(theme.Hint.Render("Contacting the server...") + "\n")
	} else if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n")
	} else if !s.formComplete() {
		b.WriteString(theme.Hint.Render("Fill in every field to continue") + "\n")
	}

	card := theme.Card.Width(min(width-4, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// errorText maps request failures to the message shown on the form.
func errorText(err error) string {
	if apiErr, ok := err.(*api.APIError); ok {
		return apiErr.Detail
	}
	return "could not reach the server: " + err.Error()
}
