package quizflow

import (
	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// quizReadyMsg carries a finished generation request. Token ties it to
// the request that started it; stale tokens are dropped by the flow
// controller.
type quizReadyMsg struct {
	Token     uint64
	AttemptID string
	Questions []quiz.Question
	Err       error
}

// recsReadyMsg carries the post-quiz recommendation fetch result.
type recsReadyMsg struct {
	AttemptID string
	Set       *api.RecommendationSet
	Err       error
}
