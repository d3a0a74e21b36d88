package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/internal/llm"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider. It is used
// when no backend is configured, so practice works offline.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLM creates a generator backed by an LLM provider.
func NewLLM(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Solution string   `json:"solution"`
	Hint     string   `json:"hint"`
}

func (g *LLMGenerator) Generate(ctx context.Context, spec Spec) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(spec)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	questions := make([]quiz.Question, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		correct, err := quiz.LetterToIndex(q.Answer)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, quiz.Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: correct,
			Explanation:  q.Solution,
			Hint:         q.Hint,
		})
	}

	if err := validateQuiz(questions, spec); err != nil {
		return nil, err
	}

	return questions, nil
}

func (g *LLMGenerator) Source() string { return "llm" }
