package history

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/layout"
)

// tab identifies one pane of the progress view.
type tab int

const (
	tabAttempts tab = iota
	tabSubjects
	tabPlans
	tabFeedback
	tabCount
)

func (t tab) label() string {
	switch t {
	case tabAttempts:
		return "Attempts"
	case tabSubjects:
		return "Subjects"
	case tabPlans:
		return "Plans"
	default:
		return "Feedback"
	}
}

// loadedMsg carries everything the progress view shows, fetched in one
// pass when the screen opens.
type loadedMsg struct {
	Attempts []store.AttemptSummary
	Stats    []store.SubjectStats
	Plans    []store.PlanEventData
	Snapshot *store.Snapshot
	Err      error
}

// answersMsg carries the per-question detail for one attempt.
type answersMsg struct {
	AttemptID string
	Answers   []store.AnswerEventData
	Err       error
}

// HistoryScreen shows past quiz attempts, per-subject accuracy, generated
// plans, and the last fetched feedback. Everything comes from the local
// event log, so it works offline.
type HistoryScreen struct {
	events      store.EventRepo
	recommender *recommend.Fetcher

	tab     tab
	cursor  int
	loading bool
	errMsg  string

	attempts []store.AttemptSummary
	stats    []store.SubjectStats
	plans    []store.PlanEventData
	snapshot *store.Snapshot

	// Attempt detail, nil while on the list.
	detailID string
	answers  []store.AnswerEventData
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscHandler = (*HistoryScreen)(nil)

// New creates the progress screen.
func New(events store.EventRepo, recommender *recommend.Fetcher) *HistoryScreen {
	return &HistoryScreen{
		events:      events,
		recommender: recommender,
		loading:     true,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) Title() string {
	return "My Progress"
}

func (s *HistoryScreen) HandlesEsc() bool {
	return s.detailID != ""
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.detailID != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back to list"}}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch pane"},
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.tab == tabAttempts {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Details"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// load reads every pane's data in one command.
func (s *HistoryScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var msg loadedMsg

		msg.Attempts, msg.Err = s.events.RecentAttempts(ctx, store.QueryOpts{Limit: 20})
		if msg.Err != nil {
			return msg
		}
		if msg.Stats, msg.Err = s.events.StatsBySubject(ctx); msg.Err != nil {
			return msg
		}
		if msg.Plans, msg.Err = s.events.RecentPlans(ctx, store.QueryOpts{Limit: 10}); msg.Err != nil {
			return msg
		}
		if s.recommender != nil {
			// A missing snapshot is fine; the pane just stays empty.
			msg.Snapshot, _ = s.recommender.Cached(ctx)
		}
		return msg
	}
}

func (s *HistoryScreen) loadAnswers(attemptID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		answers, err := s.events.AttemptAnswers(ctx, attemptID)
		return answersMsg{AttemptID: attemptID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.attempts = msg.Attempts
		s.stats = msg.Stats
		s.plans = msg.Plans
		s.snapshot = msg.Snapshot
		return s, nil

	case answersMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.detailID = msg.AttemptID
		s.answers = msg.Answers
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.detailID != "" {
		if msg.String() == "esc" {
			s.detailID = ""
			s.answers = nil
		}
		return s, nil
	}

	switch msg.String() {
	case "tab", "right":
		s.tab = (s.tab + 1) % tabCount
		s.cursor = 0
	case "shift+tab", "left":
		s.tab = (s.tab - 1 + tabCount) % tabCount
		s.cursor = 0
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
	case "enter":
		if s.tab == tabAttempts && s.cursor < len(s.attempts) {
			return s, s.loadAnswers(s.attempts[s.cursor].AttemptID)
		}
	}

	return s, nil
}

// rowCount is the number of selectable rows in the active pane.
func (s *HistoryScreen) rowCount() int {
	switch s.tab {
	case tabAttempts:
		return len(s.attempts)
	case tabSubjects:
		return len(s.stats)
	case tabPlans:
		return len(s.plans)
	default:
		return 0
	}
}
