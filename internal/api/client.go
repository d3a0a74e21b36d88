// Package api is the REST client for the AI-Tutor backend. Every call is
// a single request with no automatic retry: a failure is surfaced to the
// user, who re-triggers the action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// Client talks to the backend. The credential store supplies the bearer
// token for protected calls.
type Client struct {
	baseURL string
	http    *http.Client
	creds   auth.Store
}

// New creates a Client from config. creds may be nil for a client that
// only performs auth calls.
func New(cfg Config, creds auth.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		creds:   creds,
	}
}

// GenerateQuiz requests a fresh question set from the backend.
func (c *Client) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) ([]quiz.Question, error) {
	body, err := c.post(ctx, "/quiz/generate", req, true)
	if err != nil {
		return nil, err
	}
	if err := quizResponseSchema.validate(body); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/quiz/generate", Body: body, Err: err}
	}

	var resp generateQuizResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/quiz/generate", Body: body, Err: err}
	}
	questions, err := resp.toQuestions()
	if err != nil {
		return nil, &ErrBadResponse{Endpoint: "/quiz/generate", Body: body, Err: err}
	}
	return questions, nil
}

// Recommendations sends the per-question breakdown of a submitted quiz
// and returns the backend's structured feedback.
func (c *Client) Recommendations(ctx context.Context, req RecommendationsRequest) (*RecommendationSet, error) {
	body, err := c.post(ctx, "/quiz/recommendations", req, true)
	if err != nil {
		return nil, err
	}
	if err := recommendationsResponseSchema.validate(body); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/quiz/recommendations", Body: body, Err: err}
	}

	var resp recommendationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/quiz/recommendations", Body: body, Err: err}
	}
	return &resp.Recommendations, nil
}

// GenerateStudyPlan submits a completed exam-plan draft for generation.
func (c *Client) GenerateStudyPlan(ctx context.Context, req StudyPlanRequest) (*StudyPlan, error) {
	body, err := c.post(ctx, "/tutor/generate-study-plan", req, true)
	if err != nil {
		return nil, err
	}
	if err := studyPlanResponseSchema.validate(body); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/tutor/generate-study-plan", Body: body, Err: err}
	}

	var resp studyPlanResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ErrBadResponse{Endpoint: "/tutor/generate-study-plan", Body: body, Err: err}
	}
	return &resp.StudyPlan, nil
}

// Login authenticates against /auth/{role}/login and returns the
// credential to persist.
func (c *Client) Login(ctx context.Context, role string, req AuthRequest) (*auth.Credential, error) {
	return c.authCall(ctx, fmt.Sprintf("/auth/%s/login", role))(req)
}

// Signup registers a new account against /auth/{role}/signup.
func (c *Client) Signup(ctx context.Context, role string, req AuthRequest) (*auth.Credential, error) {
	return c.authCall(ctx, fmt.Sprintf("/auth/%s/signup", role))(req)
}

func (c *Client) authCall(ctx context.Context, path string) func(AuthRequest) (*auth.Credential, error) {
	return func(req AuthRequest) (*auth.Credential, error) {
		body, err := c.post(ctx, path, req, false)
		if err != nil {
			return nil, err
		}
		if err := authResponseSchema.validate(body); err != nil {
			return nil, &ErrBadResponse{Endpoint: path, Body: body, Err: err}
		}

		var resp AuthResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, &ErrBadResponse{Endpoint: path, Body: body, Err: err}
		}
		return &auth.Credential{
			Token: resp.Token,
			User: &auth.User{
				ID:    resp.User.ID,
				Name:  resp.User.Name,
				Email: resp.User.Email,
				Role:  resp.User.Role,
			},
		}, nil
	}
}

// post sends one JSON request and returns the raw 2xx body. Non-2xx
// responses become *APIError with the backend's {detail}.
func (c *Client) post(ctx context.Context, path string, payload any, authorized bool) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("no backend configured (set TUTOR_API_URL)")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authorized && c.creds != nil {
		cred, err := c.creds.Load()
		if err == nil && cred != nil && cred.Token != "" {
			req.Header.Set("Authorization", "Bearer "+cred.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Detail: parseDetail(body)}
	}
	return body, nil
}
