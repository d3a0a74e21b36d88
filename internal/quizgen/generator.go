package quizgen

import (
	"context"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// Spec describes the quiz to generate.
type Spec struct {
	// ClassLevel is the display label, e.g. "Class 10".
	ClassLevel string

	// Subject and Chapter come from the guided selection flow.
	Subject string
	Chapter string

	// Difficulty is "easy", "medium", or "hard".
	Difficulty string

	// NumQuestions is the requested quiz length.
	NumQuestions int
}

// Generator produces quiz questions for a spec.
type Generator interface {
	// Generate produces the questions for one quiz attempt.
	Generate(ctx context.Context, spec Spec) ([]quiz.Question, error)

	// Source identifies where questions come from, for event logging.
	Source() string
}

// Unavailable is the generator used when neither a backend nor an LLM
// provider is configured. Every request fails with setup instructions.
type Unavailable struct{}

func (Unavailable) Generate(_ context.Context, _ Spec) ([]quiz.Question, error) {
	return nil, fmt.Errorf("no question source configured: set TUTOR_API_URL or an LLM API key")
}

func (Unavailable) Source() string { return "none" }
