package planner

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/planwizard"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

// mockEventRepo records appended plan events.
type mockEventRepo struct {
	planEvents []store.PlanEventData
}

func (m *mockEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error { return nil }
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlanEvent(_ context.Context, data store.PlanEventData) error {
	m.planEvents = append(m.planEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptAnswers(_ context.Context, _ string) ([]store.AnswerEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) StatsBySubject(_ context.Context) ([]store.SubjectStats, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentPlans(_ context.Context, _ store.QueryOpts) ([]store.PlanEventData, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func samplePlan() *api.StudyPlan {
	p := &api.StudyPlan{
		PlanName:      "Board exam prep",
		Subject:       "Mathematics",
		GradeLevel:    "Class 10",
		ExamDate:      "2026-03-01",
		DaysUntilExam: 45,
	}
	p.StudySchedule.WeeklyBreakdown = []api.WeekPlan{
		{Week: 1, FocusTopics: []string{"Algebra"}},
		{Week: 2, FocusTopics: []string{"Trigonometry"}},
	}
	return p
}

func fillDetails(s *PlannerScreen) {
	s.inputs[0].SetValue("Board exam prep")
	s.inputs[1].SetValue("Class 10")
	s.inputs[2].SetValue("Mathematics")
	s.inputs[3].SetValue("Algebra, Trigonometry")
	s.syncDraft()
}

func fillSchedule(s *PlannerScreen) {
	s.inputs[0].SetValue("2026-03-01")
	s.inputs[1].SetValue("17:00")
	s.inputs[2].SetValue("19:00")
	s.syncDraft()
}

func TestPlanner_NextBlockedUntilStepComplete(t *testing.T) {
	s := New(nil, &mockEventRepo{})

	s.focus = s.fieldCount() - 1
	s.Update(specialKey(tea.KeyEnter))

	if s.wizard.Step() != planwizard.StepDetails {
		t.Errorf("step = %v, want StepDetails", s.wizard.Step())
	}
	if s.errMsg == "" {
		t.Error("expected an inline validation message")
	}
}

func TestPlanner_NextAdvancesWhenComplete(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	fillDetails(s)

	s.focus = s.fieldCount() - 1
	s.Update(specialKey(tea.KeyEnter))

	if s.wizard.Step() != planwizard.StepSchedule {
		t.Errorf("step = %v, want StepSchedule", s.wizard.Step())
	}
	if s.errMsg != "" {
		t.Errorf("unexpected error message %q", s.errMsg)
	}
}

func TestPlanner_BackKeepsEnteredData(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	fillDetails(s)
	s.focus = s.fieldCount() - 1
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEscape))
	if s.wizard.Step() != planwizard.StepDetails {
		t.Fatalf("step = %v, want StepDetails", s.wizard.Step())
	}
	if got := s.inputs[0].Value(); got != "Board exam prep" {
		t.Errorf("plan name after back = %q, want it preserved", got)
	}
}

func TestPlanner_PreferenceRowsCycle(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	fillDetails(s)
	s.focus = s.fieldCount() - 1
	s.Update(specialKey(tea.KeyEnter))
	fillSchedule(s)
	s.focus = s.fieldCount() - 1
	s.Update(specialKey(tea.KeyEnter))

	if s.wizard.Step() != planwizard.StepPreferences {
		t.Fatalf("step = %v, want StepPreferences", s.wizard.Step())
	}

	before := s.wizard.Draft().PreferredTime
	s.focus = 0
	s.Update(specialKey(tea.KeyEnter))
	after := s.wizard.Draft().PreferredTime
	if before == after {
		t.Errorf("preferred time did not cycle: %q", after)
	}

	s.focus = 3
	s.Update(specialKey(tea.KeyEnter))
	if !s.wizard.Draft().UseGoogleCalendar {
		t.Error("expected the calendar toggle to flip on")
	}
}

func TestPlanner_GeneratedPlanLogged(t *testing.T) {
	events := &mockEventRepo{}
	s := New(nil, events)

	_, cmd := s.Update(planReadyMsg{Plan: samplePlan()})
	if s.plan == nil {
		t.Fatal("expected the plan to be stored")
	}
	if cmd == nil {
		t.Fatal("expected a log command")
	}
	cmd()

	if len(events.planEvents) != 1 {
		t.Fatalf("plan events = %d, want 1", len(events.planEvents))
	}
	got := events.planEvents[0]
	if got.PlanName != "Board exam prep" || got.Weeks != 2 || got.DaysUntilExam != 45 {
		t.Errorf("logged plan = %+v", got)
	}
}

func TestPlanner_GenerateFailureKeepsWizard(t *testing.T) {
	s := New(nil, &mockEventRepo{})

	s.Update(planReadyMsg{Err: errors.New("backend down")})
	if s.plan != nil {
		t.Error("no plan should be stored on failure")
	}
	if s.errMsg == "" {
		t.Error("expected the failure to be shown")
	}
}

func TestPlanner_PlanViewWeekNavigation(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	s.Update(planReadyMsg{Plan: samplePlan()})

	s.Update(keyPress('l'))
	if s.week != 1 {
		t.Errorf("week = %d, want 1", s.week)
	}
	s.Update(keyPress('l'))
	if s.week != 1 {
		t.Errorf("week = %d, should clamp at the last week", s.week)
	}
	s.Update(keyPress('h'))
	if s.week != 0 {
		t.Errorf("week = %d, want 0", s.week)
	}
}

func TestPlanner_NewPlanStartsOver(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	fillDetails(s)
	s.Update(planReadyMsg{Plan: samplePlan()})

	s.Update(keyPress('n'))
	if s.plan != nil {
		t.Error("expected the plan view to close")
	}
	if s.wizard.Step() != planwizard.StepDetails {
		t.Errorf("step = %v, want StepDetails", s.wizard.Step())
	}
	if got := s.wizard.Draft().PlanName; got != "" {
		t.Errorf("draft plan name = %q, want cleared", got)
	}
}

func TestPlanner_ViewRenders(t *testing.T) {
	s := New(nil, &mockEventRepo{})
	if s.View(100, 40) == "" {
		t.Error("wizard view should not be empty")
	}
	s.Update(planReadyMsg{Plan: samplePlan()})
	if s.View(100, 40) == "" {
		t.Error("plan view should not be empty")
	}
}
