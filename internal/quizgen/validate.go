package quizgen

import (
	"fmt"
	"strings"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Question int // 1-based question number, 0 for quiz-level failures
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Question == 0 {
		return fmt.Sprintf("invalid quiz: %s", e.Message)
	}
	return fmt.Sprintf("invalid question %d: %s", e.Question, e.Message)
}

// validateQuiz checks structural soundness of a generated quiz before it
// reaches the learner. The schema already constrains shape; this catches
// semantic problems the schema can't express.
func validateQuiz(questions []quiz.Question, spec Spec) error {
	if len(questions) == 0 {
		return &ValidationError{Message: "no questions generated"}
	}
	if spec.NumQuestions > 0 && len(questions) != spec.NumQuestions {
		return &ValidationError{
			Message: fmt.Sprintf("got %d questions, requested %d", len(questions), spec.NumQuestions),
		}
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		n := i + 1
		if strings.TrimSpace(q.Text) == "" {
			return &ValidationError{Question: n, Message: "question text is empty"}
		}
		if len(q.Options) != quiz.OptionCount {
			return &ValidationError{
				Question: n,
				Message:  fmt.Sprintf("expected %d options, got %d", quiz.OptionCount, len(q.Options)),
			}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return &ValidationError{Question: n, Message: fmt.Sprintf("option %d is empty", j+1)}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return &ValidationError{Question: n, Message: "correct index out of range"}
		}

		key := strings.ToLower(strings.TrimSpace(q.Text))
		if seen[key] {
			return &ValidationError{Question: n, Message: "duplicate question text"}
		}
		seen[key] = true
	}
	return nil
}
