package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

// mockEventRepo serves canned history data.
type mockEventRepo struct {
	attempts []store.AttemptSummary
	stats    []store.SubjectStats
	plans    []store.PlanEventData
	answers  map[string][]store.AnswerEventData
	err      error
}

func (m *mockEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error { return nil }
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlanEvent(_ context.Context, _ store.PlanEventData) error { return nil }
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptSummary, error) {
	return m.attempts, m.err
}
func (m *mockEventRepo) AttemptAnswers(_ context.Context, attemptID string) ([]store.AnswerEventData, error) {
	return m.answers[attemptID], nil
}
func (m *mockEventRepo) StatsBySubject(_ context.Context) ([]store.SubjectStats, error) {
	return m.stats, nil
}
func (m *mockEventRepo) RecentPlans(_ context.Context, _ store.QueryOpts) ([]store.PlanEventData, error) {
	return m.plans, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testRepo() *mockEventRepo {
	return &mockEventRepo{
		attempts: []store.AttemptSummary{
			{AttemptID: "a1", Timestamp: time.Now(), Subject: "Mathematics", Chapter: "Algebra", Score: 4, TotalQuestions: 5},
			{AttemptID: "a2", Timestamp: time.Now(), Subject: "Physics", Chapter: "Waves", Score: 2, TotalQuestions: 5},
		},
		stats: []store.SubjectStats{
			{Subject: "Mathematics", Attempts: 1, Questions: 5, Correct: 4},
		},
		plans: []store.PlanEventData{
			{PlanName: "Prep", Subject: "Mathematics", ExamDate: "2026-03-01", Weeks: 3},
		},
		answers: map[string][]store.AnswerEventData{
			"a1": {
				{AttemptID: "a1", QuestionIndex: 0, QuestionText: "2+2?", SelectedIndex: 1, CorrectIndex: 1, Correct: true},
			},
		},
	}
}

func loadedScreen(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo, nil)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to load data")
	}
	s.Update(cmd())
	return s
}

func TestHistory_LoadPopulatesPanes(t *testing.T) {
	s := loadedScreen(t, testRepo())

	if s.loading {
		t.Error("expected loading to finish")
	}
	if len(s.attempts) != 2 || len(s.stats) != 1 || len(s.plans) != 1 {
		t.Errorf("loaded %d attempts, %d stats, %d plans", len(s.attempts), len(s.stats), len(s.plans))
	}
}

func TestHistory_LoadErrorShown(t *testing.T) {
	repo := testRepo()
	repo.err = errors.New("db locked")
	s := loadedScreen(t, repo)

	if s.errMsg == "" {
		t.Error("expected the load error to be stored")
	}
	if s.View(100, 40) == "" {
		t.Error("error view should not be empty")
	}
}

func TestHistory_TabSwitching(t *testing.T) {
	s := loadedScreen(t, testRepo())

	s.Update(specialKey(tea.KeyTab))
	if s.tab != tabSubjects {
		t.Errorf("tab = %v, want subjects", s.tab)
	}
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.tab != tabAttempts {
		t.Errorf("tab = %v, want wrap back to attempts", s.tab)
	}
}

func TestHistory_AttemptDetail(t *testing.T) {
	s := loadedScreen(t, testRepo())

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected an answer-load command")
	}
	s.Update(cmd())

	if s.detailID != "a1" {
		t.Fatalf("detailID = %q, want a1", s.detailID)
	}
	if len(s.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(s.answers))
	}
	if !s.HandlesEsc() {
		t.Error("detail view should handle Esc itself")
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.detailID != "" {
		t.Error("expected Esc to return to the list")
	}
}

func TestHistory_CursorClampedPerPane(t *testing.T) {
	s := loadedScreen(t, testRepo())

	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want clamp at 1", s.cursor)
	}

	s.Update(specialKey(tea.KeyTab))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want reset on tab switch", s.cursor)
	}
}

func TestHistory_ViewRendersEveryTab(t *testing.T) {
	s := loadedScreen(t, testRepo())
	for i := 0; i < int(tabCount); i++ {
		if s.View(100, 40) == "" {
			t.Errorf("tab %d view should not be empty", i)
		}
		s.Update(specialKey(tea.KeyTab))
	}
}
