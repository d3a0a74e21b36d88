package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/llm"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

func testSpec() Spec {
	return Spec{
		ClassLevel:   "Class 10",
		Subject:      "Mathematics",
		Chapter:      "Quadratic Equations",
		Difficulty:   "medium",
		NumQuestions: 2,
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question": "What are the roots of x^2 - 5x + 6 = 0?",
				"options": ["2 and 3", "1 and 6", "-2 and -3", "5 and 6"],
				"answer": "A",
				"solution": "Factor: (x-2)(x-3) = 0, so x = 2 or x = 3.",
				"hint": "Look for two numbers that multiply to 6 and add to 5."
			},
			{
				"question": "What is the discriminant of x^2 + 4x + 4 = 0?",
				"options": ["0", "4", "16", "-16"],
				"answer": "A",
				"solution": "b^2 - 4ac = 16 - 16 = 0.",
				"hint": "Use b^2 - 4ac."
			}
		]
	}`)
}

func TestLLMGenerator_Generate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuizJSON()},
	)
	g := NewLLM(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].CorrectIndex != 0 {
		t.Errorf("expected correct index 0, got %d", questions[0].CorrectIndex)
	}
	if len(questions[0].Options) != quiz.OptionCount {
		t.Errorf("expected %d options, got %d", quiz.OptionCount, len(questions[0].Options))
	}
	if questions[1].Hint == "" {
		t.Error("expected hint to be carried over")
	}
}

func TestLLMGenerator_PromptIncludesSpec(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuizJSON()},
	)
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Class 10", "Mathematics", "Quadratic Equations", "medium", "Number of questions: 2"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
	if mock.Calls[0].Schema != QuizSchema {
		t.Error("expected quiz schema on the request")
	}
}

func TestLLMGenerator_WrongQuestionCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuizJSON()},
	)
	g := NewLLM(mock, DefaultConfig())

	spec := testSpec()
	spec.NumQuestions = 5

	_, err := g.Generate(context.Background(), spec)
	if err == nil {
		t.Fatal("expected error for wrong question count")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestLLMGenerator_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := NewLLM(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testSpec())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestLLMGenerator_BadAnswerLetter(t *testing.T) {
	bad := json.RawMessage(`{
		"questions": [
			{
				"question": "Pick one.",
				"options": ["a", "b", "c", "d"],
				"answer": "E",
				"solution": "n/a",
				"hint": ""
			}
		]
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
	)
	g := NewLLM(mock, DefaultConfig())

	spec := testSpec()
	spec.NumQuestions = 1

	_, err := g.Generate(context.Background(), spec)
	if err == nil {
		t.Fatal("expected error for invalid answer letter")
	}
}

func TestLLMGenerator_Source(t *testing.T) {
	g := NewLLM(llm.NewMockProvider(), DefaultConfig())
	if g.Source() != "llm" {
		t.Fatalf("expected source 'llm', got %q", g.Source())
	}
}

func TestValidateQuiz(t *testing.T) {
	good := func() []quiz.Question {
		out := make([]quiz.Question, 2)
		for i := range out {
			out[i] = quiz.Question{
				Text:         fmt.Sprintf("Question %d?", i+1),
				Options:      []string{"w", "x", "y", "z"},
				CorrectIndex: i,
				Explanation:  "because",
			}
		}
		return out
	}

	tests := []struct {
		name    string
		mutate  func([]quiz.Question) []quiz.Question
		wantErr bool
	}{
		{
			name:   "valid quiz",
			mutate: func(qs []quiz.Question) []quiz.Question { return qs },
		},
		{
			name:    "empty quiz",
			mutate:  func([]quiz.Question) []quiz.Question { return nil },
			wantErr: true,
		},
		{
			name: "blank question text",
			mutate: func(qs []quiz.Question) []quiz.Question {
				qs[0].Text = "   "
				return qs
			},
			wantErr: true,
		},
		{
			name: "three options",
			mutate: func(qs []quiz.Question) []quiz.Question {
				qs[1].Options = qs[1].Options[:3]
				return qs
			},
			wantErr: true,
		},
		{
			name: "blank option",
			mutate: func(qs []quiz.Question) []quiz.Question {
				qs[0].Options[2] = ""
				return qs
			},
			wantErr: true,
		},
		{
			name: "correct index out of range",
			mutate: func(qs []quiz.Question) []quiz.Question {
				qs[1].CorrectIndex = 4
				return qs
			},
			wantErr: true,
		},
		{
			name: "duplicate question text",
			mutate: func(qs []quiz.Question) []quiz.Question {
				qs[1].Text = qs[0].Text
				return qs
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := tt.mutate(good())
			spec := Spec{NumQuestions: len(qs)}
			err := validateQuiz(qs, spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateQuiz() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
