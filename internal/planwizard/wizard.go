package planwizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
)

// Step identifies one page of the study plan wizard.
type Step int

const (
	// StepDetails collects plan name, grade, subject, and topics.
	StepDetails Step = iota

	// StepSchedule collects the exam date and daily study window.
	StepSchedule

	// StepPreferences collects study time, intensity, and session length.
	StepPreferences

	stepCount
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepSchedule:
		return "schedule"
	case StepPreferences:
		return "preferences"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Draft accumulates wizard input across steps.
type Draft struct {
	PlanName   string
	GradeLevel string
	Subject    string
	Topics     []string

	ExamDate  string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM

	PreferredTime     string // "morning", "afternoon", "evening"
	StudyIntensity    string // "light", "moderate", "intensive"
	SessionDuration   string // e.g. "30 minutes"
	UseGoogleCalendar bool
}

var (
	// ErrIncompleteStep is returned when Next is called before the
	// current step's required fields are filled.
	ErrIncompleteStep = errors.New("planwizard: current step is incomplete")

	// ErrNotReady is returned when Generate is called before all steps
	// are complete.
	ErrNotReady = errors.New("planwizard: wizard is not complete")
)

// planAPI is the slice of the backend client the wizard needs.
type planAPI interface {
	GenerateStudyPlan(ctx context.Context, req api.StudyPlanRequest) (*api.StudyPlan, error)
}

// Wizard walks the learner through three gated steps and generates the
// plan once every step validates. Steps advance only forward via Next;
// Back never loses entered data.
type Wizard struct {
	client planAPI
	step   Step
	draft  Draft
}

// New creates a wizard positioned at the first step.
func New(client planAPI) *Wizard {
	return &Wizard{client: client}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Draft returns the accumulated input.
func (w *Wizard) Draft() Draft { return w.draft }

// SetDraft replaces the accumulated input. Screens bind their inputs to a
// copy and write it back on change.
func (w *Wizard) SetDraft(d Draft) { w.draft = d }

// StepComplete reports whether the given step's required fields are filled.
func (w *Wizard) StepComplete(s Step) bool {
	return validateStep(s, w.draft) == nil
}

// Next advances to the following step. It fails when the current step's
// required fields are missing, and is a no-op on the last step.
func (w *Wizard) Next() error {
	if err := validateStep(w.step, w.draft); err != nil {
		return err
	}
	if w.step < stepCount-1 {
		w.step++
	}
	return nil
}

// Back moves to the previous step without validation. Entered data is kept.
func (w *Wizard) Back() {
	if w.step > 0 {
		w.step--
	}
}

// StartOver clears the draft and returns to the first step.
func (w *Wizard) StartOver() {
	w.step = StepDetails
	w.draft = Draft{}
}

// Generate validates every step and requests the plan from the backend.
// A failed request leaves the wizard state untouched so the learner can
// retry without re-entering anything.
func (w *Wizard) Generate(ctx context.Context) (*api.StudyPlan, error) {
	for s := StepDetails; s < stepCount; s++ {
		if err := validateStep(s, w.draft); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotReady, err)
		}
	}
	return w.client.GenerateStudyPlan(ctx, buildRequest(w.draft))
}

// validateStep checks the required fields for one step.
func validateStep(s Step, d Draft) error {
	switch s {
	case StepDetails:
		if strings.TrimSpace(d.PlanName) == "" {
			return fmt.Errorf("%w: plan name is required", ErrIncompleteStep)
		}
		if strings.TrimSpace(d.GradeLevel) == "" {
			return fmt.Errorf("%w: grade level is required", ErrIncompleteStep)
		}
		if strings.TrimSpace(d.Subject) == "" {
			return fmt.Errorf("%w: subject is required", ErrIncompleteStep)
		}
		if len(nonBlankTopics(d.Topics)) == 0 {
			return fmt.Errorf("%w: at least one topic is required", ErrIncompleteStep)
		}
	case StepSchedule:
		if strings.TrimSpace(d.ExamDate) == "" {
			return fmt.Errorf("%w: exam date is required", ErrIncompleteStep)
		}
		if strings.TrimSpace(d.StartTime) == "" || strings.TrimSpace(d.EndTime) == "" {
			return fmt.Errorf("%w: daily study window is required", ErrIncompleteStep)
		}
	case StepPreferences:
		if strings.TrimSpace(d.PreferredTime) == "" {
			return fmt.Errorf("%w: preferred study time is required", ErrIncompleteStep)
		}
		if strings.TrimSpace(d.StudyIntensity) == "" {
			return fmt.Errorf("%w: study intensity is required", ErrIncompleteStep)
		}
		if strings.TrimSpace(d.SessionDuration) == "" {
			return fmt.Errorf("%w: session duration is required", ErrIncompleteStep)
		}
	}
	return nil
}

// nonBlankTopics filters out blank entries; the topic list in the UI has
// fixed slots that may be left empty.
func nonBlankTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// buildRequest maps the draft to the wire request, dropping blank topics.
func buildRequest(d Draft) api.StudyPlanRequest {
	return api.StudyPlanRequest{
		PlanName:          strings.TrimSpace(d.PlanName),
		GradeLevel:        strings.TrimSpace(d.GradeLevel),
		Subject:           strings.TrimSpace(d.Subject),
		Topics:            nonBlankTopics(d.Topics),
		ExamDate:          strings.TrimSpace(d.ExamDate),
		StartTime:         strings.TrimSpace(d.StartTime),
		EndTime:           strings.TrimSpace(d.EndTime),
		PreferredTime:     d.PreferredTime,
		StudyIntensity:    d.StudyIntensity,
		SessionDuration:   d.SessionDuration,
		UseGoogleCalendar: d.UseGoogleCalendar,
	}
}
