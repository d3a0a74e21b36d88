package planner

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/planwizard"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/layout"
)

var (
	preferredTimes = []string{"morning", "afternoon", "evening"}
	intensities    = []string{"light", "moderate", "intensive"}
	durations      = []string{"30 minutes", "45 minutes", "60 minutes"}
)

// planReadyMsg carries the generated plan or the failure.
type planReadyMsg struct {
	Plan *api.StudyPlan
	Err  error
}

// PlannerScreen walks the three wizard steps and shows the generated
// plan. Input lives in the text fields; the wizard draft is kept in sync
// so Back and StartOver behave the same as in the domain layer.
type PlannerScreen struct {
	wizard *planwizard.Wizard
	events store.EventRepo

	inputs []components.TextInput
	cycles []int // selected value per preference row
	useCal bool
	focus  int

	busy   bool
	errMsg string

	plan *api.StudyPlan
	week int
}

var _ screen.Screen = (*PlannerScreen)(nil)
var _ screen.KeyHintProvider = (*PlannerScreen)(nil)
var _ screen.EscHandler = (*PlannerScreen)(nil)

// New creates the study planner screen at the first wizard step.
func New(client *api.Client, events store.EventRepo) *PlannerScreen {
	s := &PlannerScreen{
		wizard: planwizard.New(client),
		events: events,
		cycles: []int{0, 1, 1},
	}
	s.buildInputs()
	return s
}

func (s *PlannerScreen) Init() tea.Cmd {
	return nil
}

func (s *PlannerScreen) Title() string {
	if s.plan != nil {
		return "Study Plan"
	}
	return "Study Planner"
}

// HandlesEsc keeps Esc inside the wizard except on the very first step
// with nothing generated yet.
func (s *PlannerScreen) HandlesEsc() bool {
	return s.plan != nil || s.wizard.Step() != planwizard.StepDetails
}

func (s *PlannerScreen) KeyHints() []layout.KeyHint {
	if s.plan != nil {
		return []layout.KeyHint{
			{Key: "←→", Description: "Week"},
			{Key: "N", Description: "New plan"},
			{Key: "Esc", Description: "Done"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Confirm"},
	}
	if s.wizard.Step() != planwizard.StepDetails {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return hints
}

// fieldCount is the number of focusable rows on the current step,
// including the trailing Next/Generate button.
func (s *PlannerScreen) fieldCount() int {
	switch s.wizard.Step() {
	case planwizard.StepDetails:
		return 5 // name, grade, subject, topics, button
	case planwizard.StepSchedule:
		return 4 // exam date, start, end, button
	default:
		return 5 // time, intensity, duration, calendar, button
	}
}

func (s *PlannerScreen) onButton() bool {
	return s.focus == s.fieldCount()-1
}

func (s *PlannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.plan = msg.Plan
		s.week = 0
		return s, s.logPlan(msg.Plan)

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.plan != nil {
			return s.updatePlanView(msg)
		}
		return s.updateWizard(msg)
	}

	return s, nil
}

func (s *PlannerScreen) updateWizard(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	step := s.wizard.Step()

	switch msg.String() {
	case "esc":
		if step != planwizard.StepDetails {
			s.syncDraft()
			s.wizard.Back()
			s.buildInputs()
		}
		return s, nil
	case "tab", "down":
		s.setFocus((s.focus + 1) % s.fieldCount())
		return s, nil
	case "shift+tab", "up":
		s.setFocus((s.focus - 1 + s.fieldCount()) % s.fieldCount())
		return s, nil
	case "enter":
		if s.onButton() {
			return s, s.advance()
		}
		if step == planwizard.StepPreferences {
			s.cycleCurrent()
			return s, nil
		}
		// Enter on an input behaves like Tab.
		s.setFocus((s.focus + 1) % s.fieldCount())
		return s, nil
	case "space":
		if step == planwizard.StepPreferences && !s.onButton() {
			s.cycleCurrent()
			return s, nil
		}
	}

	if step != planwizard.StepPreferences && !s.onButton() {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		s.syncDraft()
		return s, cmd
	}

	return s, nil
}

func (s *PlannerScreen) updatePlanView(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	weeks := s.planWeeks()
	switch msg.String() {
	case "left", "h":
		if s.week > 0 {
			s.week--
		}
	case "right", "l":
		if s.week < len(weeks)-1 {
			s.week++
		}
	case "n":
		s.plan = nil
		s.errMsg = ""
		s.wizard.StartOver()
		s.focus = 0
		s.buildInputs()
	case "esc":
		s.plan = nil
	}
	return s, nil
}

// advance moves to the next step, or generates on the last one. The
// button is only reachable, not disabled, so a premature press surfaces
// the validation error inline.
func (s *PlannerScreen) advance() tea.Cmd {
	s.syncDraft()
	step := s.wizard.Step()

	if step == planwizard.StepPreferences {
		return s.generate()
	}

	if err := s.wizard.Next(); err != nil {
		s.errMsg = "Please fill in every field before continuing"
		return nil
	}
	s.errMsg = ""
	s.buildInputs()
	return nil
}

func (s *PlannerScreen) generate() tea.Cmd {
	s.busy = true
	s.errMsg = ""
	w := s.wizard

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		plan, err := w.Generate(ctx)
		return planReadyMsg{Plan: plan, Err: err}
	}
}

// logPlan appends the generated plan to the local event log, best effort.
func (s *PlannerScreen) logPlan(plan *api.StudyPlan) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.PlanEventData{
		PlanName:      plan.PlanName,
		Subject:       plan.Subject,
		GradeLevel:    plan.GradeLevel,
		ExamDate:      plan.ExamDate,
		DaysUntilExam: plan.DaysUntilExam,
		Weeks:         len(plan.StudySchedule.WeeklyBreakdown),
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.events.AppendPlanEvent(ctx, data)
		return nil
	}
}

// buildInputs recreates the text fields for the current step, prefilled
// from the draft so Back round-trips cleanly.
func (s *PlannerScreen) buildInputs() {
	d := s.wizard.Draft()
	s.focus = 0

	switch s.wizard.Step() {
	case planwizard.StepDetails:
		s.inputs = []components.TextInput{
			components.NewTextInput("Plan name", "Board exam prep", false),
			components.NewTextInput("Grade level", "Class 10", false),
			components.NewTextInput("Subject", "Mathematics", false),
			components.NewTextInput("Topics (comma separated)", "Algebra, Trigonometry", false),
		}
		s.inputs[0].SetValue(d.PlanName)
		s.inputs[1].SetValue(d.GradeLevel)
		s.inputs[2].SetValue(d.Subject)
		s.inputs[3].SetValue(strings.Join(d.Topics, ", "))

	case planwizard.StepSchedule:
		s.inputs = []components.TextInput{
			components.NewTextInput("Exam date (YYYY-MM-DD)", "2026-03-01", false),
			components.NewTextInput("Study window start (HH:MM)", "17:00", false),
			components.NewTextInput("Study window end (HH:MM)", "19:00", false),
		}
		s.inputs[0].SetValue(d.ExamDate)
		s.inputs[1].SetValue(d.StartTime)
		s.inputs[2].SetValue(d.EndTime)

	case planwizard.StepPreferences:
		s.inputs = nil
		s.useCal = d.UseGoogleCalendar
		if i := indexOf(preferredTimes, d.PreferredTime); i >= 0 {
			s.cycles[0] = i
		}
		if i := indexOf(intensities, d.StudyIntensity); i >= 0 {
			s.cycles[1] = i
		}
		if i := indexOf(durations, d.SessionDuration); i >= 0 {
			s.cycles[2] = i
		}
	}

	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	}
	s.syncDraft()
}

func (s *PlannerScreen) setFocus(f int) {
	if s.focus < len(s.inputs) {
		s.inputs[s.focus].Blur()
	}
	s.focus = f
	if s.focus < len(s.inputs) {
		s.inputs[s.focus].Focus()
	}
}

// cycleCurrent advances the focused preference row to its next value.
func (s *PlannerScreen) cycleCurrent() {
	switch s.focus {
	case 0:
		s.cycles[0] = (s.cycles[0] + 1) % len(preferredTimes)
	case 1:
		s.cycles[1] = (s.cycles[1] + 1) % len(intensities)
	case 2:
		s.cycles[2] = (s.cycles[2] + 1) % len(durations)
	case 3:
		s.useCal = !s.useCal
	}
	s.syncDraft()
}

// syncDraft writes the on-screen values into the wizard draft.
func (s *PlannerScreen) syncDraft() {
	d := s.wizard.Draft()

	switch s.wizard.Step() {
	case planwizard.StepDetails:
		d.PlanName = s.inputs[0].Value()
		d.GradeLevel = s.inputs[1].Value()
		d.Subject = s.inputs[2].Value()
		d.Topics = splitTopics(s.inputs[3].Value())

	case planwizard.StepSchedule:
		d.ExamDate = s.inputs[0].Value()
		d.StartTime = s.inputs[1].Value()
		d.EndTime = s.inputs[2].Value()

	case planwizard.StepPreferences:
		d.PreferredTime = preferredTimes[s.cycles[0]]
		d.StudyIntensity = intensities[s.cycles[1]]
		d.SessionDuration = durations[s.cycles[2]]
		d.UseGoogleCalendar = s.useCal
	}

	s.wizard.SetDraft(d)
}

func indexOf(values []string, v string) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}

func splitTopics(v string) []string {
	parts := strings.Split(v, ",")
	topics := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

func (s *PlannerScreen) planWeeks() []api.WeekPlan {
	if s.plan == nil {
		return nil
	}
	return s.plan.StudySchedule.WeeklyBreakdown
}
