package quizflow

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/flow"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/components"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

func (s *QuizFlowScreen) View(width, height int) string {
	var body string
	switch s.ctrl.Step() {
	case flow.SelectClass, flow.SelectSubject, flow.SelectChapter:
		body = s.viewSelection()
	case flow.Quiz:
		body = s.viewQuiz(width)
	case flow.Results:
		body = s.viewResults(width)
	default:
		body = theme.Hint.Render("Nothing to show")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// breadcrumb shows the choices made so far, e.g.
// "Class 10 › Mathematics › Algebra".
func (s *QuizFlowScreen) breadcrumb() string {
	sel := s.ctrl.Selection()
	parts := []string{}
	for _, p := range []string{sel.ClassLevel, sel.Subject, sel.Chapter} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return theme.Subtitle.Render(strings.Join(parts, " › "))
}

func (s *QuizFlowScreen) viewSelection() string {
	var b strings.Builder

	prompt := map[flow.Step]string{
		flow.SelectClass:   "Which class are you in?",
		flow.SelectSubject: "Pick a subject",
		flow.SelectChapter: "Pick a chapter",
	}[s.ctrl.Step()]

	b.WriteString(theme.Title.Render(prompt) + "\n")
	if crumb := s.breadcrumb(); crumb != "" {
		b.WriteString(crumb + "\n")
	}
	b.WriteString("\n")

	if s.ctrl.Loading() {
		b.WriteString(theme.Hint.Render("Generating your quiz, hang tight...") + "\n")
		return b.String()
	}

	b.WriteString(s.menu.View())

	if s.ctrl.Step() == flow.SelectChapter {
		sel := s.ctrl.Selection()
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
			"difficulty: %s   questions: %d", sel.Difficulty, sel.NumQuestions)) + "\n")
	}

	if msg := s.ctrl.Err(); msg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(msg) + "\n")
	}

	return b.String()
}

func (s *QuizFlowScreen) viewQuiz(width int) string {
	sess := s.ctrl.Session()
	var b strings.Builder

	b.WriteString(s.breadcrumb() + "\n\n")

	// Submitted and holding for the feedback fetch; the score stays
	// hidden until the results stage opens.
	if s.ctrl.AwaitingFeedback() {
		b.WriteString(theme.Title.Render("Quiz submitted") + "\n\n")
		b.WriteString(theme.Hint.Render("Scoring your attempt and fetching feedback...") + "\n")
		return b.String()
	}

	answered := sess.AnsweredCount()
	bar := components.NewProgressBar(
		fmt.Sprintf("Answered %d/%d", answered, sess.Len()),
		float64(answered)/float64(sess.Len()),
		false,
		min(width-12, 50),
	)
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.current+1, sess.Len())) + "\n\n")
	b.WriteString(s.options.View() + "\n")

	q, err := sess.Question(s.current)
	if err == nil && s.showHint && q.Hint != "" {
		b.WriteString("\n" + theme.Hint.Render("Hint: "+q.Hint) + "\n")
	}

	if s.editing {
		b.WriteString("\n" + s.rationale.View() + "\n")
	} else if a, err := sess.Answer(s.current); err == nil && a.Rationale != "" {
		b.WriteString("\n" + theme.Hint.Render("Your reasoning: "+a.Rationale) + "\n")
	}

	if msg := s.ctrl.Err(); msg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(msg) + "\n")
	}

	return b.String()
}

func (s *QuizFlowScreen) viewResults(width int) string {
	if s.reviewing {
		return s.viewReview()
	}

	sess := s.ctrl.Session()
	score, _ := sess.Score()

	var b strings.Builder
	title := "Quiz complete!"
	if s.practice {
		title = "Retake complete!"
	}
	b.WriteString(theme.Title.Render(title) + "\n")
	b.WriteString(s.breadcrumb() + "\n\n")

	pct := float64(score) / float64(sess.Len())
	b.WriteString(theme.Body.Render(fmt.Sprintf("You scored %d out of %d", score, sess.Len())) + "\n")
	bar := components.NewProgressBar("", pct, true, min(width-12, 50))
	b.WriteString(bar.View() + "\n\n")

	switch {
	case s.recsLoading:
		b.WriteString(theme.Hint.Render("Fetching your personalised feedback...") + "\n")
	case s.recsErr != "":
		b.WriteString(theme.Incorrect.Render("Could not fetch feedback: "+s.recsErr) + "\n")
		b.WriteString(theme.Hint.Render("Press R to retry") + "\n")
	case s.recs != nil:
		b.WriteString(s.viewRecommendations())
	}

	if missed := len(s.ctrl.MissedQuestions()); missed > 0 {
		b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
			"Press T to retake the %d you missed, with hints", missed)) + "\n")
	}

	return b.String()
}

func (s *QuizFlowScreen) viewRecommendations() string {
	var b strings.Builder

	if s.recs.Summary != "" {
		b.WriteString(theme.Body.Render(s.recs.Summary) + "\n\n")
	}
	if len(s.recs.StrongTopics) > 0 {
		b.WriteString(theme.Correct.Render("Strong: ") + strings.Join(s.recs.StrongTopics, ", ") + "\n")
	}
	if len(s.recs.NeedsPractice) > 0 {
		b.WriteString(theme.Incorrect.Render("Needs practice: ") + strings.Join(s.recs.NeedsPractice, ", ") + "\n")
	}
	if len(s.recs.LearningPath) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Suggested next steps") + "\n")
		for i, step := range s.recs.LearningPath {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return b.String()
}

// viewReview walks the submitted questions with correct answers revealed.
func (s *QuizFlowScreen) viewReview() string {
	sess := s.ctrl.Session()

	q, err := sess.Question(s.reviewIdx)
	if err != nil {
		return theme.Incorrect.Render(err.Error())
	}
	a, _ := sess.Answer(s.reviewIdx)

	list := components.NewOptionList(q, a.SelectedIndex)
	list.Revealed = true

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Review %d of %d", s.reviewIdx+1, sess.Len())) + "\n\n")
	b.WriteString(list.View() + "\n")

	if q.Explanation != "" {
		b.WriteString("\n" + theme.Body.Render("Solution: "+q.Explanation) + "\n")
	}
	if a.Rationale != "" {
		b.WriteString("\n" + theme.Hint.Render("Your reasoning: "+a.Rationale) + "\n")
	}

	return b.String()
}
