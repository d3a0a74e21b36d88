package recommend

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

// ErrNotSubmitted is returned when recommendations are requested for a
// quiz that has not been submitted yet.
var ErrNotSubmitted = errors.New("recommend: quiz not submitted")

// snapshotKeep is how many cached snapshots survive a fetch. Only the
// newest one is ever read back, so older ones exist purely as slack.
const snapshotKeep = 1

// recommendationAPI is the slice of the backend client the fetcher needs.
type recommendationAPI interface {
	Recommendations(ctx context.Context, req api.RecommendationsRequest) (*api.RecommendationSet, error)
}

// Selection carries the quiz context the backend needs to ground its
// feedback.
type Selection struct {
	ClassLevel string // display label, e.g. "Class 10"
	Subject    string
	Chapter    string
	Difficulty string
}

// Fetcher requests post-quiz feedback from the backend. Each fetch is a
// single request; the caller decides when to retry by re-invoking.
type Fetcher struct {
	client    recommendationAPI
	snapshots store.SnapshotRepo
}

// New creates a Fetcher. snapshots may be nil to disable offline caching.
func New(client recommendationAPI, snapshots store.SnapshotRepo) *Fetcher {
	return &Fetcher{client: client, snapshots: snapshots}
}

// Fetch builds the per-question results from the submitted session and
// requests recommendations. The latest result is cached as a snapshot so
// the history view has something to show offline.
func (f *Fetcher) Fetch(ctx context.Context, sel Selection, s *quiz.Session) (*api.RecommendationSet, error) {
	req, err := BuildRequest(sel, s)
	if err != nil {
		return nil, err
	}

	set, err := f.client.Recommendations(ctx, req)
	if err != nil {
		return nil, err
	}

	if f.snapshots != nil {
		snap := &store.Snapshot{
			Data: store.RecommendationSnapshot{
				Version:       1,
				Summary:       set.Summary,
				LearningPath:  set.LearningPath,
				StrongTopics:  set.StrongTopics,
				NeedsPractice: set.NeedsPractice,
			},
		}
		if saveErr := f.snapshots.Save(ctx, snap); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to cache recommendations: %v\n", saveErr)
		} else if pruneErr := f.snapshots.Prune(ctx, snapshotKeep); pruneErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to prune old recommendations: %v\n", pruneErr)
		}
	}

	return set, nil
}

// Cached returns the most recently cached recommendation snapshot, or nil
// when nothing has been cached yet.
func (f *Fetcher) Cached(ctx context.Context) (*store.Snapshot, error) {
	if f.snapshots == nil {
		return nil, nil
	}
	return f.snapshots.Latest(ctx)
}

// BuildRequest maps a submitted session to the wire request. Unanswered
// questions are sent with a null selected_index.
func BuildRequest(sel Selection, s *quiz.Session) (api.RecommendationsRequest, error) {
	if !s.Submitted() {
		return api.RecommendationsRequest{}, ErrNotSubmitted
	}

	results := make([]api.QuestionResult, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		q, err := s.Question(i)
		if err != nil {
			return api.RecommendationsRequest{}, err
		}
		a, err := s.Answer(i)
		if err != nil {
			return api.RecommendationsRequest{}, err
		}

		res := api.QuestionResult{
			Question:           q.Text,
			Options:            q.Options,
			CorrectIndex:       q.CorrectIndex,
			Explanation:        q.Explanation,
			StudentExplanation: a.Rationale,
		}
		if a.Answered() {
			selected := a.SelectedIndex
			res.SelectedIndex = &selected
		}
		results = append(results, res)
	}

	return api.RecommendationsRequest{
		Subject:    sel.Subject,
		Topic:      sel.Chapter,
		ClassLevel: api.NormalizeClassLevel(sel.ClassLevel),
		Difficulty: sel.Difficulty,
		Results:    results,
	}, nil
}
