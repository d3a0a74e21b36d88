package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quizgen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/router"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/history"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/login"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/planner"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screens/quizflow"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

// HomeScreen is the hub. Every feature starts here and ends back here.
type HomeScreen struct {
	creds       auth.Store
	client      *api.Client
	generator   quizgen.Generator
	recommender *recommend.Fetcher
	events      store.EventRepo
	menu        components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the hub screen.
func New(creds auth.Store, client *api.Client, generator quizgen.Generator, recommender *recommend.Fetcher, events store.EventRepo) *HomeScreen {
	s := &HomeScreen{
		creds:       creds,
		client:      client,
		generator:   generator,
		recommender: recommender,
		events:      events,
	}

	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label: "📝  Take a Quiz",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizflow.New(s.generator, s.recommender, s.events),
					}
				}
			},
		},
		{
			Label: "📅  Study Planner",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: planner.New(s.client, s.events),
					}
				}
			},
		},
		{
			Label: "📈  My Progress",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: history.New(s.events, s.recommender),
					}
				}
			},
		},
		{
			Label: "🚪  Log Out",
			Action: func() tea.Cmd {
				return s.logout()
			},
		},
		{
			Label: "👋  Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// logout clears the stored credential and replaces the hub with the
// login screen so Back cannot reach signed-in screens.
func (s *HomeScreen) logout() tea.Cmd {
	if err := s.creds.Clear(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: login.New(s.creds, s.client, auth.RoleStudent, func() screen.Screen {
				return New(s.creds, s.client, s.generator, s.recommender, s.events)
			}),
		}
	}
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("What would you like to do?") + "\n")
	b.WriteString(theme.Subtitle.Render(s.greeting()) + "\n\n")
	b.WriteString(s.menu.View())

	card := theme.Card.Width(min(width-4, 48)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *HomeScreen) greeting() string {
	cred, err := s.creds.Load()
	if err != nil || cred == nil || cred.User == nil || cred.User.Name == "" {
		return "Welcome back"
	}
	return "Welcome back, " + cred.User.Name
}
