package planwizard

import (
	"context"
	"errors"
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
)

type stubAPI struct {
	got   api.StudyPlanRequest
	calls int
	out   *api.StudyPlan
	err   error
}

func (s *stubAPI) GenerateStudyPlan(_ context.Context, req api.StudyPlanRequest) (*api.StudyPlan, error) {
	s.calls++
	s.got = req
	return s.out, s.err
}

func completeDraft() Draft {
	return Draft{
		PlanName:        "Board exam prep",
		GradeLevel:      "10",
		Subject:         "Mathematics",
		Topics:          []string{"Algebra", "Trigonometry"},
		ExamDate:        "2026-10-15",
		StartTime:       "16:00",
		EndTime:         "19:00",
		PreferredTime:   "evening",
		StudyIntensity:  "moderate",
		SessionDuration: "45 minutes",
	}
}

func TestWizard_StartsAtDetails(t *testing.T) {
	w := New(&stubAPI{})
	if w.Step() != StepDetails {
		t.Fatalf("expected StepDetails, got %v", w.Step())
	}
}

func TestWizard_NextBlockedUntilStepComplete(t *testing.T) {
	w := New(&stubAPI{})

	err := w.Next()
	if !errors.Is(err, ErrIncompleteStep) {
		t.Fatalf("expected ErrIncompleteStep, got %v", err)
	}
	if w.Step() != StepDetails {
		t.Fatalf("expected to stay at StepDetails, got %v", w.Step())
	}

	w.SetDraft(completeDraft())
	if err := w.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Step() != StepSchedule {
		t.Fatalf("expected StepSchedule, got %v", w.Step())
	}
}

func TestWizard_DetailsStepTopicGate(t *testing.T) {
	tests := []struct {
		name   string
		topics []string
		ok     bool
	}{
		{name: "all blank", topics: []string{"", "  "}, ok: false},
		{name: "nil", topics: nil, ok: false},
		{name: "one filled one blank", topics: []string{"Algebra", ""}, ok: true},
		{name: "all filled", topics: []string{"Algebra", "Trigonometry"}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(&stubAPI{})
			d := completeDraft()
			d.Topics = tt.topics
			w.SetDraft(d)
			if got := w.StepComplete(StepDetails); got != tt.ok {
				t.Fatalf("StepComplete(StepDetails) = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestWizard_ScheduleStepGate(t *testing.T) {
	w := New(&stubAPI{})
	d := completeDraft()
	d.ExamDate = ""
	w.SetDraft(d)

	if w.StepComplete(StepSchedule) {
		t.Fatal("expected schedule step incomplete without exam date")
	}

	d.ExamDate = "2026-10-15"
	d.EndTime = ""
	w.SetDraft(d)
	if w.StepComplete(StepSchedule) {
		t.Fatal("expected schedule step incomplete without end time")
	}
}

func TestWizard_BackKeepsData(t *testing.T) {
	w := New(&stubAPI{})
	w.SetDraft(completeDraft())

	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	w.Back()

	if w.Step() != StepDetails {
		t.Fatalf("expected StepDetails, got %v", w.Step())
	}
	if w.Draft().PlanName != "Board exam prep" {
		t.Error("expected draft to survive Back")
	}

	// Back on the first step is a no-op.
	w.Back()
	if w.Step() != StepDetails {
		t.Fatalf("expected StepDetails, got %v", w.Step())
	}
}

func TestWizard_StartOverResets(t *testing.T) {
	w := New(&stubAPI{})
	w.SetDraft(completeDraft())
	if err := w.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	w.StartOver()

	if w.Step() != StepDetails {
		t.Fatalf("expected StepDetails, got %v", w.Step())
	}
	if w.Draft().PlanName != "" || len(w.Draft().Topics) != 0 {
		t.Errorf("expected empty draft, got %+v", w.Draft())
	}
}

func TestWizard_GenerateRequiresAllSteps(t *testing.T) {
	stub := &stubAPI{}
	w := New(stub)
	d := completeDraft()
	d.SessionDuration = ""
	w.SetDraft(d)

	_, err := w.Generate(context.Background())
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no request, got %d", stub.calls)
	}
}

func TestWizard_GenerateMapsRequest(t *testing.T) {
	stub := &stubAPI{out: &api.StudyPlan{PlanName: "Board exam prep"}}
	w := New(stub)
	d := completeDraft()
	d.Topics = []string{" Algebra ", "", "Trigonometry"}
	w.SetDraft(d)

	plan, err := w.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PlanName != "Board exam prep" {
		t.Errorf("unexpected plan: %+v", plan)
	}

	// Blank topic slots are dropped and the rest trimmed.
	if len(stub.got.Topics) != 2 || stub.got.Topics[0] != "Algebra" {
		t.Errorf("unexpected topics: %v", stub.got.Topics)
	}
	if stub.got.ExamDate != "2026-10-15" || stub.got.PreferredTime != "evening" {
		t.Errorf("unexpected request: %+v", stub.got)
	}
}

func TestWizard_GenerateFailureKeepsDraft(t *testing.T) {
	stub := &stubAPI{err: errors.New("network unreachable")}
	w := New(stub)
	w.SetDraft(completeDraft())

	_, err := w.Generate(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	// Single attempt, draft intact for retry.
	if stub.calls != 1 {
		t.Fatalf("expected exactly 1 request, got %d", stub.calls)
	}
	if w.Draft().PlanName != "Board exam prep" {
		t.Error("expected draft to survive a failed generate")
	}
}
