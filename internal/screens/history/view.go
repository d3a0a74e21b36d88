package history

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

func (s *HistoryScreen) View(width, height int) string {
	var body string
	switch {
	case s.loading:
		body = theme.Hint.Render("Loading your progress...")
	case s.errMsg != "":
		body = theme.Incorrect.Render(s.errMsg)
	case s.detailID != "":
		body = s.viewDetail()
	default:
		body = s.viewTabs()
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *HistoryScreen) viewTabs() string {
	var b strings.Builder

	var names []string
	for t := tab(0); t < tabCount; t++ {
		if t == s.tab {
			names = append(names, theme.Selected.Render("["+t.label()+"]"))
		} else {
			names = append(names, theme.Unselected.Render(" "+t.label()+" "))
		}
	}
	b.WriteString(strings.Join(names, " ") + "\n\n")

	switch s.tab {
	case tabAttempts:
		b.WriteString(s.viewAttempts())
	case tabSubjects:
		b.WriteString(s.viewSubjects())
	case tabPlans:
		b.WriteString(s.viewPlans())
	default:
		b.WriteString(s.viewFeedback())
	}

	return b.String()
}

func (s *HistoryScreen) viewAttempts() string {
	if len(s.attempts) == 0 {
		return theme.Hint.Render("No quizzes yet. Take one from the home menu!")
	}

	var b strings.Builder
	for i, a := range s.attempts {
		line := fmt.Sprintf("%s  %s · %s  %d/%d",
			a.Timestamp.Format("02 Jan 15:04"), a.Subject, a.Chapter, a.Score, a.TotalQuestions)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) viewSubjects() string {
	if len(s.stats) == 0 {
		return theme.Hint.Render("Nothing to aggregate yet.")
	}

	var b strings.Builder
	for i, st := range s.stats {
		pct := 0
		if st.Questions > 0 {
			pct = st.Correct * 100 / st.Questions
		}
		line := fmt.Sprintf("%-16s %d attempts · %d%% correct (%d/%d)",
			st.Subject, st.Attempts, pct, st.Correct, st.Questions)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) viewPlans() string {
	if len(s.plans) == 0 {
		return theme.Hint.Render("No study plans generated yet.")
	}

	var b strings.Builder
	for i, p := range s.plans {
		line := fmt.Sprintf("%s · %s · exam %s · %d weeks",
			p.PlanName, p.Subject, p.ExamDate, p.Weeks)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + theme.Body.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) viewFeedback() string {
	if s.snapshot == nil {
		return theme.Hint.Render("Finish a quiz to get personalised feedback.")
	}

	d := s.snapshot.Data
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("From "+s.snapshot.Timestamp.Format("02 Jan 2006 15:04")) + "\n\n")
	if d.Summary != "" {
		b.WriteString(theme.Body.Render(d.Summary) + "\n\n")
	}
	if len(d.StrongTopics) > 0 {
		b.WriteString(theme.Correct.Render("Strong: ") + strings.Join(d.StrongTopics, ", ") + "\n")
	}
	if len(d.NeedsPractice) > 0 {
		b.WriteString(theme.Incorrect.Render("Needs practice: ") + strings.Join(d.NeedsPractice, ", ") + "\n")
	}
	if len(d.LearningPath) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Suggested next steps") + "\n")
		for i, step := range d.LearningPath {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return b.String()
}

func (s *HistoryScreen) viewDetail() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Attempt detail") + "\n\n")

	if len(s.answers) == 0 {
		b.WriteString(theme.Hint.Render("No per-question data recorded for this attempt."))
		return b.String()
	}

	for _, a := range s.answers {
		mark := theme.Incorrect.Render("✗")
		if a.Correct {
			mark = theme.Correct.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s Q%d. %s\n", mark, a.QuestionIndex+1, a.QuestionText))

		if a.SelectedIndex == quiz.Unanswered {
			b.WriteString(theme.Hint.Render("   not answered") + "\n")
		} else if letter, err := quiz.IndexToLetter(a.SelectedIndex); err == nil {
			correct, _ := quiz.IndexToLetter(a.CorrectIndex)
			b.WriteString(theme.Hint.Render(fmt.Sprintf("   chose %s, correct %s", letter, correct)) + "\n")
		}
		if a.Rationale != "" {
			b.WriteString(theme.Hint.Render("   reasoning: "+a.Rationale) + "\n")
		}
	}

	return b.String()
}
