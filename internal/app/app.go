package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quizgen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/router"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/home"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/login"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/layout"
)

// Deps bundles everything the screens need. It is built once at startup
// and handed down explicitly; nothing reads ambient globals.
type Deps struct {
	Creds       auth.Store
	Gate        *auth.Gate
	Client      *api.Client
	Generator   quizgen.Generator
	Recommender *recommend.Fetcher
	Events      store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, starting on the login screen unless
// a usable credential is already stored.
func newAppModel(deps Deps) AppModel {
	homeScreen := func() screen.Screen {
		return home.New(deps.Creds, deps.Client, deps.Generator, deps.Recommender, deps.Events)
	}

	var initial screen.Screen
	if decision := deps.Gate.Check(auth.RoleStudent, time.Now()); decision.Outcome == auth.RedirectLogin {
		initial = login.New(deps.Creds, deps.Client, decision.Role, homeScreen)
	} else {
		initial = homeScreen()
	}

	return AppModel{deps: deps, router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that manage their own esc (mid-quiz confirm,
			// wizard back-steps) get the key instead of the router.
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.userLabel(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// footerHints asks the active screen for its key hints, falling back to
// generic navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// userLabel formats the signed-in user for the header, empty when signed
// out or the credential is unreadable.
func (m AppModel) userLabel() string {
	cred, err := m.deps.Creds.Load()
	if err != nil || cred == nil || cred.User == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", cred.User.Name, cred.User.Role)
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	if _, err := tea.NewProgram(newAppModel(deps)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
