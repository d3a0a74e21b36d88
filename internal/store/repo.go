package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// QuizEventData captures a quiz attempt lifecycle event.
type QuizEventData struct {
	AttemptID      string
	Action         string // "start" or "submit"
	ClassLevel     string
	Subject        string
	Chapter        string
	Source         string // "remote" or "llm"
	TotalQuestions int
	Score          int
}

// AnswerEventData captures one answered question within an attempt.
type AnswerEventData struct {
	AttemptID     string
	QuestionIndex int
	QuestionText  string
	SelectedIndex int // -1 when left unanswered
	CorrectIndex  int
	Correct       bool
	Rationale     string
}

// PlanEventData captures a generated study plan.
type PlanEventData struct {
	PlanName      string
	Subject       string
	GradeLevel    string
	ExamDate      string
	DaysUntilExam int
	Weeks         int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AttemptSummary is a read model for one submitted quiz attempt.
type AttemptSummary struct {
	AttemptID      string
	Timestamp      time.Time
	ClassLevel     string
	Subject        string
	Chapter        string
	Source         string
	TotalQuestions int
	Score          int
}

// SubjectStats aggregates answer accuracy for one subject.
type SubjectStats struct {
	Subject   string
	Attempts  int
	Questions int
	Correct   int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizEvent records a quiz attempt start or submit.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendPlanEvent records a generated study plan.
	AppendPlanEvent(ctx context.Context, data PlanEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns LLM request events, newest first.
	RecentLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error)

	// RecentAttempts returns submitted quiz attempts, newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptSummary, error)

	// AttemptAnswers returns the answer events for one attempt in question order.
	AttemptAnswers(ctx context.Context, attemptID string) ([]AnswerEventData, error)

	// StatsBySubject aggregates attempt and answer counts per subject.
	StatsBySubject(ctx context.Context) ([]SubjectStats, error)

	// RecentPlans returns generated plans, newest first.
	RecentPlans(ctx context.Context, opts QueryOpts) ([]PlanEventData, error)
}

// RecommendationSnapshot is the persisted form of the last fetched
// performance summary, kept so the history view works offline.
type RecommendationSnapshot struct {
	Version       int            `json:"version"`
	Summary       string         `json:"summary"`
	LearningPath  []string       `json:"learning_path"`
	StrongTopics  []string       `json:"strong_topics"`
	NeedsPractice []string       `json:"needs_practice"`
	Breakdown     map[string]any `json:"breakdown,omitempty"`
}

// Snapshot represents a point-in-time capture of the recommendation state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      RecommendationSnapshot
}

// SnapshotRepo manages recommendation snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
