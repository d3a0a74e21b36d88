package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	// WAL mode falls back to "memory" for in-memory databases,
	// so we skip journal_mode here. It is tested with file-based DBs.
	pragmas := map[string]string{
		"foreign_keys": "1",
		"synchronous":  "1", // NORMAL = 1
	}
	for pragma, want := range pragmas {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+pragma).Scan(&got), pragma)
		assert.Equal(t, want, got, pragma)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Monotonically increasing from 1.
	for i := 1; i <= 5; i++ {
		seq, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}
}

func TestQuizEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := QuizEventData{
		AttemptID:      "attempt-1",
		Action:         "start",
		ClassLevel:     "10",
		Subject:        "Mathematics",
		Chapter:        "Algebra",
		Source:         "remote",
		TotalQuestions: 5,
	}
	require.NoError(t, repo.AppendQuizEvent(ctx, start))

	submit := start
	submit.Action = "submit"
	submit.Score = 4
	require.NoError(t, repo.AppendQuizEvent(ctx, submit))

	attempts, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, attempts, 1, "only the submit should surface as an attempt")

	got := attempts[0]
	assert.Equal(t, "attempt-1", got.AttemptID)
	assert.Equal(t, 4, got.Score)
	assert.Equal(t, 5, got.TotalQuestions)
	assert.Equal(t, "Mathematics", got.Subject)
	assert.Equal(t, "Algebra", got.Chapter)
	assert.Equal(t, "10", got.ClassLevel)
}

func TestRecentAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, subj := range []string{"Mathematics", "Science", "English"} {
		require.NoError(t, repo.AppendQuizEvent(ctx, QuizEventData{
			AttemptID:      "attempt-" + subj,
			Action:         "submit",
			ClassLevel:     "9",
			Subject:        subj,
			Chapter:        "Ch1",
			Source:         "remote",
			TotalQuestions: 5,
			Score:          i,
		}))
	}

	attempts, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "English", attempts[0].Subject)
	assert.Equal(t, "Science", attempts[1].Subject)
}

func TestAttemptAnswersInQuestionOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Append out of order to verify the query sorts by question index.
	for _, idx := range []int{2, 0, 1} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID:     "attempt-1",
			QuestionIndex: idx,
			QuestionText:  "Q",
			SelectedIndex: idx,
			CorrectIndex:  idx,
			Correct:       true,
		}))
	}
	// Answer for a different attempt should not leak in.
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID:     "attempt-2",
		QuestionIndex: 0,
		QuestionText:  "Other",
		SelectedIndex: -1,
		CorrectIndex:  1,
	}))

	answers, err := repo.AttemptAnswers(ctx, "attempt-1")
	require.NoError(t, err)
	require.Len(t, answers, 3)
	for i, a := range answers {
		assert.Equal(t, i, a.QuestionIndex)
	}
}

func TestStatsBySubject(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []QuizEventData{
		{AttemptID: "a1", Action: "submit", ClassLevel: "10", Subject: "Mathematics", Chapter: "Algebra", Source: "remote", TotalQuestions: 5, Score: 3},
		{AttemptID: "a2", Action: "submit", ClassLevel: "10", Subject: "Mathematics", Chapter: "Geometry", Source: "llm", TotalQuestions: 5, Score: 5},
		{AttemptID: "a3", Action: "submit", ClassLevel: "10", Subject: "Science", Chapter: "Light", Source: "remote", TotalQuestions: 4, Score: 2},
		{AttemptID: "a4", Action: "start", ClassLevel: "10", Subject: "Science", Chapter: "Light", Source: "remote", TotalQuestions: 4},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendQuizEvent(ctx, e))
	}

	stats, err := repo.StatsBySubject(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byName := make(map[string]SubjectStats)
	for _, st := range stats {
		byName[st.Subject] = st
	}
	assert.Equal(t, SubjectStats{Subject: "Mathematics", Attempts: 2, Questions: 10, Correct: 8}, byName["Mathematics"])
	assert.Equal(t, SubjectStats{Subject: "Science", Attempts: 1, Questions: 4, Correct: 2}, byName["Science"])
}

func TestPlanEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendPlanEvent(ctx, PlanEventData{
		PlanName:      "Board exam prep",
		Subject:       "Mathematics",
		GradeLevel:    "10",
		ExamDate:      "2026-10-15",
		DaysUntilExam: 44,
		Weeks:         6,
	}))

	plans, err := repo.RecentPlans(ctx, QueryOpts{Limit: 5})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Board exam prep", plans[0].PlanName)
	assert.Equal(t, 6, plans[0].Weeks)
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "quiz-gen",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    120,
		Success:      true,
		RequestBody:  "[user]\ngenerate",
		ResponseBody: `{"questions":[]}`,
	}))

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	events, err := repo.RecentLLMEvents(ctx, QueryOpts{Limit: 5})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "quiz-gen", events[0].Purpose)
	assert.NotEmpty(t, events[0].RequestBody)
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap, "no snapshot saved yet")

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data: RecommendationSnapshot{
			Version:       1,
			Summary:       "Strong in algebra, needs practice in geometry.",
			LearningPath:  []string{"Triangles", "Circles"},
			StrongTopics:  []string{"Linear equations"},
			NeedsPractice: []string{"Geometry"},
		},
	}))

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.NotZero(t, snap.Sequence, "sequence assigned on save")
	assert.NotEmpty(t, snap.Data.Summary)
	assert.Len(t, snap.Data.LearningPath, 2)
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      RecommendationSnapshot{Version: 1},
		}))
	}

	require.NoError(t, repo.Prune(ctx, 5))

	count, err := s.Client().Snapshot.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), snap.Sequence, "newest snapshot survives the prune")
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"quiz_events", "answer_events", "plan_events", "llm_request_events", "snapshots"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}
}
