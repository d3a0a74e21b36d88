package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

type stubAPI struct {
	got   api.RecommendationsRequest
	calls int
	out   *api.RecommendationSet
	err   error
}

func (s *stubAPI) Recommendations(_ context.Context, req api.RecommendationsRequest) (*api.RecommendationSet, error) {
	s.calls++
	s.got = req
	return s.out, s.err
}

type memSnapshots struct {
	saved  []*store.Snapshot
	latest *store.Snapshot
	pruned []int
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	m.latest = snap
	return nil
}

func (m *memSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	return m.latest, nil
}

func (m *memSnapshots) Prune(_ context.Context, keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

func submittedSession(t *testing.T) *quiz.Session {
	t.Helper()
	s := quiz.NewSession("attempt-1", []quiz.Question{
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "E1"},
		{Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "E2"},
		{Text: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "E3"},
	})
	if err := s.RecordAnswer(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordRationale(0, "first option matched"); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordAnswer(2, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	return s
}

func testSelection() Selection {
	return Selection{
		ClassLevel: "Class 10",
		Subject:    "Mathematics",
		Chapter:    "Algebra",
		Difficulty: "medium",
	}
}

func TestBuildRequest(t *testing.T) {
	s := submittedSession(t)

	req, err := BuildRequest(testSelection(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.ClassLevel != "10" {
		t.Errorf("class_level = %q, want \"10\"", req.ClassLevel)
	}
	if req.Subject != "Mathematics" || req.Topic != "Algebra" {
		t.Errorf("unexpected request: %+v", req)
	}
	if len(req.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(req.Results))
	}

	// Answered question carries its index and rationale.
	r0 := req.Results[0]
	if r0.SelectedIndex == nil || *r0.SelectedIndex != 0 {
		t.Errorf("results[0].selected_index = %v, want 0", r0.SelectedIndex)
	}
	if r0.StudentExplanation != "first option matched" {
		t.Errorf("results[0].student_explanation = %q", r0.StudentExplanation)
	}

	// Unanswered question is sent with a null selected_index.
	if req.Results[1].SelectedIndex != nil {
		t.Errorf("results[1].selected_index = %v, want nil", req.Results[1].SelectedIndex)
	}

	// Wrong answer still carries what the learner picked.
	r2 := req.Results[2]
	if r2.SelectedIndex == nil || *r2.SelectedIndex != 3 {
		t.Errorf("results[2].selected_index = %v, want 3", r2.SelectedIndex)
	}
	if r2.CorrectIndex != 2 {
		t.Errorf("results[2].correct_index = %d, want 2", r2.CorrectIndex)
	}
}

func TestBuildRequest_RequiresSubmit(t *testing.T) {
	s := quiz.NewSession("attempt-1", []quiz.Question{
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
	})

	_, err := BuildRequest(testSelection(), s)
	if !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("expected ErrNotSubmitted, got %v", err)
	}
}

func TestFetch_CachesSnapshot(t *testing.T) {
	stub := &stubAPI{
		out: &api.RecommendationSet{
			Summary:       "Good grasp of basics.",
			LearningPath:  []string{"Factorisation", "Word problems"},
			StrongTopics:  []string{"Linear equations"},
			NeedsPractice: []string{"Word problems"},
		},
	}
	snaps := &memSnapshots{}
	f := New(stub, snaps)

	set, err := f.Fetch(context.Background(), testSelection(), submittedSession(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Summary == "" {
		t.Error("expected summary")
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly 1 request, got %d", stub.calls)
	}

	if len(snaps.saved) != 1 {
		t.Fatalf("expected 1 cached snapshot, got %d", len(snaps.saved))
	}
	if snaps.saved[0].Data.Summary != "Good grasp of basics." {
		t.Errorf("unexpected cached summary: %q", snaps.saved[0].Data.Summary)
	}

	cached, err := f.Cached(context.Background())
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	if cached == nil || len(cached.Data.LearningPath) != 2 {
		t.Errorf("unexpected cached snapshot: %+v", cached)
	}
}

func TestFetch_PrunesOldSnapshots(t *testing.T) {
	stub := &stubAPI{out: &api.RecommendationSet{Summary: "ok"}}
	snaps := &memSnapshots{}
	f := New(stub, snaps)

	for i := 0; i < 3; i++ {
		if _, err := f.Fetch(context.Background(), testSelection(), submittedSession(t)); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}

	// Every successful cache write is followed by a prune, so the table
	// never grows past the configured keep count.
	if len(snaps.pruned) != 3 {
		t.Fatalf("expected 3 prunes, got %d", len(snaps.pruned))
	}
	for _, keep := range snaps.pruned {
		if keep != snapshotKeep {
			t.Errorf("prune keep = %d, want %d", keep, snapshotKeep)
		}
	}
}

func TestFetch_ErrorDoesNotCache(t *testing.T) {
	stub := &stubAPI{err: errors.New("network unreachable")}
	snaps := &memSnapshots{}
	f := New(stub, snaps)

	_, err := f.Fetch(context.Background(), testSelection(), submittedSession(t))
	if err == nil {
		t.Fatal("expected error")
	}
	// A single attempt only; no automatic retries.
	if stub.calls != 1 {
		t.Fatalf("expected exactly 1 request, got %d", stub.calls)
	}
	if len(snaps.saved) != 0 {
		t.Fatalf("expected no cached snapshot, got %d", len(snaps.saved))
	}
	if len(snaps.pruned) != 0 {
		t.Fatalf("expected no prune without a save, got %d", len(snaps.pruned))
	}
}

func TestFetch_NilSnapshotsOK(t *testing.T) {
	stub := &stubAPI{out: &api.RecommendationSet{Summary: "ok"}}
	f := New(stub, nil)

	if _, err := f.Fetch(context.Background(), testSelection(), submittedSession(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached, err := f.Cached(context.Background()); err != nil || cached != nil {
		t.Fatalf("expected nil cached, got %v, %v", cached, err)
	}
}
