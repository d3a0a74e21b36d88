package quizgen

import (
	"context"
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

type stubAPI struct {
	got api.GenerateQuizRequest
	out []quiz.Question
	err error
}

func (s *stubAPI) GenerateQuiz(_ context.Context, req api.GenerateQuizRequest) ([]quiz.Question, error) {
	s.got = req
	return s.out, s.err
}

func TestRemoteGenerator_MapsSpecToRequest(t *testing.T) {
	stub := &stubAPI{
		out: []quiz.Question{
			{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		},
	}
	g := NewRemote(stub)

	questions, err := g.Generate(context.Background(), Spec{
		ClassLevel:   "Class 9",
		Subject:      "Science",
		Chapter:      "Light",
		Difficulty:   "easy",
		NumQuestions: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	// Class level is sent as the bare number on the wire.
	if stub.got.ClassLevel != "9" {
		t.Errorf("class_level = %q, want \"9\"", stub.got.ClassLevel)
	}
	if stub.got.Subject != "Science" || stub.got.Topic != "Light" {
		t.Errorf("unexpected request: %+v", stub.got)
	}
	if stub.got.Difficulty != "easy" || stub.got.NumQuestions != 1 {
		t.Errorf("unexpected request: %+v", stub.got)
	}
}

func TestRemoteGenerator_Source(t *testing.T) {
	g := NewRemote(&stubAPI{})
	if g.Source() != "remote" {
		t.Fatalf("expected source 'remote', got %q", g.Source())
	}
}
