package planner

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/planwizard"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

func (s *PlannerScreen) View(width, height int) string {
	var body string
	if s.plan != nil {
		body = s.viewPlan()
	} else {
		body = s.viewWizard()
	}

	card := theme.Card.Width(min(width-4, 72)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *PlannerScreen) viewWizard() string {
	step := s.wizard.Step()

	var b strings.Builder
	b.WriteString(theme.Title.Render(stepTitle(step)) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Step %d of 3", int(step)+1)) + "\n\n")

	if step == planwizard.StepPreferences {
		b.WriteString(s.viewPreferenceRows())
	} else {
		for i := range s.inputs {
			b.WriteString(s.inputs[i].View() + "\n\n")
		}
	}

	label := "Next"
	if step == planwizard.StepPreferences {
		label = "Generate plan"
	}
	button := components.Button{Label: label, Active: s.onButton() && !s.busy}
	b.WriteString(button.View() + "\n\n")

	if s.busy {
		b.WriteString(theme.Hint.Render("Generating your study plan...") + "\n")
	} else if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n")
	}

	return b.String()
}

func stepTitle(step planwizard.Step) string {
	switch step {
	case planwizard.StepDetails:
		return "What are we planning for?"
	case planwizard.StepSchedule:
		return "When is the exam?"
	default:
		return "How do you like to study?"
	}
}

func (s *PlannerScreen) viewPreferenceRows() string {
	d := s.wizard.Draft()
	rows := []struct {
		label string
		value string
	}{
		{"Preferred time", d.PreferredTime},
		{"Intensity", d.StudyIntensity},
		{"Session length", d.SessionDuration},
		{"Add to Google Calendar", onOff(s.useCal)},
	}

	var b strings.Builder
	for i, row := range rows {
		line := fmt.Sprintf("%s: %s", row.label, theme.Body.Render(row.value))
		if i == s.focus {
			b.WriteString(theme.Selected.Render("▸ ") + line + "\n\n")
		} else {
			b.WriteString("  " + line + "\n\n")
		}
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (s *PlannerScreen) viewPlan() string {
	plan := s.plan
	weeks := s.planWeeks()

	var b strings.Builder
	b.WriteString(theme.Title.Render(plan.PlanName) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%s · %s · exam on %s (%d days away)",
		plan.Subject, plan.GradeLevel, plan.ExamDate, plan.DaysUntilExam)) + "\n\n")

	if len(weeks) == 0 {
		b.WriteString(theme.Hint.Render("The plan came back without a weekly schedule.") + "\n")
		return b.String()
	}

	week := weeks[s.week]
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Week %d of %d", s.week+1, len(weeks))) + "\n\n")

	if len(week.FocusTopics) > 0 {
		b.WriteString(theme.Body.Render("Focus: "+strings.Join(week.FocusTopics, ", ")) + "\n\n")
	}

	for _, day := range week.DailySchedule {
		b.WriteString(theme.Selected.Render(day.Day) + theme.Body.Render(fmt.Sprintf(
			"  %s · %s (%s)", day.Time, day.Activity, day.Duration)) + "\n")
		if day.FocusTopic != "" {
			b.WriteString(theme.Hint.Render("    "+day.FocusTopic) + "\n")
		}
	}

	if len(week.WeeklyGoals) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Goals this week") + "\n")
		for _, g := range week.WeeklyGoals {
			b.WriteString("  • " + g + "\n")
		}
	}

	return b.String()
}
