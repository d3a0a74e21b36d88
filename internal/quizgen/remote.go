package quizgen

import (
	"context"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// quizAPI is the slice of the backend client RemoteGenerator needs.
type quizAPI interface {
	GenerateQuiz(ctx context.Context, req api.GenerateQuizRequest) ([]quiz.Question, error)
}

// RemoteGenerator fetches quiz questions from the backend service.
type RemoteGenerator struct {
	client quizAPI
}

// NewRemote creates a generator backed by the backend quiz endpoint.
func NewRemote(client quizAPI) *RemoteGenerator {
	return &RemoteGenerator{client: client}
}

func (g *RemoteGenerator) Generate(ctx context.Context, spec Spec) ([]quiz.Question, error) {
	return g.client.GenerateQuiz(ctx, api.GenerateQuizRequest{
		ClassLevel:   api.NormalizeClassLevel(spec.ClassLevel),
		Subject:      spec.Subject,
		Topic:        spec.Chapter,
		Difficulty:   spec.Difficulty,
		NumQuestions: spec.NumQuestions,
	})
}

func (g *RemoteGenerator) Source() string { return "remote" }
