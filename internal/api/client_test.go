package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/auth"
)

type memStore struct{ cred *auth.Credential }

func (m *memStore) Load() (*auth.Credential, error) { return m.cred, nil }
func (m *memStore) Save(c *auth.Credential) error   { m.cred = c; return nil }
func (m *memStore) Clear() error                    { m.cred = nil; return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	creds := &memStore{cred: &auth.Credential{Token: "tok", User: &auth.User{Role: "student"}}}
	return New(cfg, creds), srv
}

func TestGenerateQuiz_RequestMapping(t *testing.T) {
	var got GenerateQuizRequest
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quiz/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if authz := r.Header.Get("Authorization"); authz != "Bearer tok" {
			t.Errorf("authorization = %q", authz)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"questions":[{"question":"What is 2+2?","options":["3","4","5","6"],"answer":"B","solution":"2+2=4","hint":"count"}]}`))
	})

	questions, err := client.GenerateQuiz(context.Background(), GenerateQuizRequest{
		ClassLevel:   NormalizeClassLevel("Class 10"),
		Subject:      "Maths",
		Topic:        "Algebra",
		Difficulty:   "medium",
		NumQuestions: 5,
	})
	if err != nil {
		t.Fatalf("generate quiz: %v", err)
	}

	want := GenerateQuizRequest{ClassLevel: "10", Subject: "Maths", Topic: "Algebra", Difficulty: "medium", NumQuestions: 5}
	if got != want {
		t.Errorf("request body = %+v, want %+v", got, want)
	}

	if len(questions) != 1 {
		t.Fatalf("got %d questions", len(questions))
	}
	q := questions[0]
	if q.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1 (answer B)", q.CorrectIndex)
	}
	if q.Explanation != "2+2=4" || q.Hint != "count" {
		t.Errorf("question mapping off: %+v", q)
	}
}

func TestGenerateQuiz_SchemaMismatchFailsClosed(t *testing.T) {
	cases := map[string]string{
		"missing questions":  `{"items":[]}`,
		"bad answer letter":  `{"questions":[{"question":"q","options":["a","b","c","d"],"answer":"E"}]}`,
		"wrong option count": `{"questions":[{"question":"q","options":["a","b"],"answer":"A"}]}`,
		"not json":           `<html>oops</html>`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})
			_, err := client.GenerateQuiz(context.Background(), GenerateQuizRequest{})
			var bad *ErrBadResponse
			if !errors.As(err, &bad) {
				t.Errorf("err = %v, want ErrBadResponse", err)
			}
		})
	}
}

func TestPost_SurfacesDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail":"model unavailable"}`))
	})
	_, err := client.GenerateQuiz(context.Background(), GenerateQuizRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Detail != "model unavailable" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d", apiErr.Status)
	}
}

func TestPost_StringifiesNonStringDetail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","topic"],"msg":"field required"}]}`))
	})
	_, err := client.GenerateQuiz(context.Background(), GenerateQuizRequest{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Detail == "" {
		t.Error("non-string detail should be stringified, got empty")
	}
}

func TestLogin_PersistableCredential(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/student/login" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"token":"jwt123","user":{"id":"u1","name":"Asha","email":"a@b.c","role":"student"}}`))
	})

	cred, err := client.Login(context.Background(), "student", AuthRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if cred.Token != "jwt123" {
		t.Errorf("token = %q", cred.Token)
	}
	if cred.User == nil || cred.User.Role != "student" || cred.User.Name != "Asha" {
		t.Errorf("user = %+v", cred.User)
	}
}

func TestLogin_RejectsUnknownRoleInResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"token":"jwt123","user":{"role":"admin"}}`))
	})
	_, err := client.Login(context.Background(), "student", AuthRequest{})
	var bad *ErrBadResponse
	if !errors.As(err, &bad) {
		t.Errorf("err = %v, want ErrBadResponse", err)
	}
}

func TestRecommendations_Mapping(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req RecommendationsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(req.Results) != 1 || req.Results[0].SelectedIndex != nil {
			t.Errorf("results = %+v", req.Results)
		}
		w.Write([]byte(`{"recommendations":{"summary":"keep going","breakdown":["b1"],"learning_path":["p1"],"strong_topics":["algebra"],"needs_practice":["geometry"]}}`))
	})

	set, err := client.Recommendations(context.Background(), RecommendationsRequest{
		Subject: "Maths",
		Results: []QuestionResult{{Question: "q", CorrectIndex: 1}},
	})
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if set.Summary != "keep going" || len(set.NeedsPractice) != 1 {
		t.Errorf("set = %+v", set)
	}
}

func TestNormalizeClassLevel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Class 10", "10"},
		{"Class 6", "6"},
		{"12", "12"},
		{" Class 9 ", "9"},
	}
	for _, tt := range tests {
		if got := NormalizeClassLevel(tt.in); got != tt.want {
			t.Errorf("NormalizeClassLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
