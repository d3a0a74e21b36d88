package api

import (
	"strings"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// GenerateQuizRequest is the body for POST /quiz/generate.
type GenerateQuizRequest struct {
	ClassLevel   string `json:"class_level"`
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

// NormalizeClassLevel converts a display class label to the wire form the
// backend expects: "Class 10" becomes "10".
func NormalizeClassLevel(classLevel string) string {
	s := strings.TrimSpace(classLevel)
	return strings.TrimSpace(strings.TrimPrefix(s, "Class "))
}

// wireQuestion is a question as the backend serializes it: the correct
// answer is a letter A-D, the worked solution field is named "solution".
type wireQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Solution string   `json:"solution"`
	Hint     string   `json:"hint"`
}

type generateQuizResponse struct {
	Questions []wireQuestion `json:"questions"`
}

// toQuestions maps wire questions into the domain form, converting the
// answer letter to a 0-based index.
func (r generateQuizResponse) toQuestions() ([]quiz.Question, error) {
	out := make([]quiz.Question, 0, len(r.Questions))
	for _, wq := range r.Questions {
		idx, err := quiz.LetterToIndex(wq.Answer)
		if err != nil {
			return nil, err
		}
		out = append(out, quiz.Question{
			Text:         wq.Question,
			Options:      wq.Options,
			CorrectIndex: idx,
			Explanation:  wq.Solution,
			Hint:         wq.Hint,
		})
	}
	return out, nil
}

// QuestionResult is one per-question entry in a recommendations request.
type QuestionResult struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectIndex       int      `json:"correct_index"`
	SelectedIndex      *int     `json:"selected_index"`
	Explanation        string   `json:"explanation"`
	StudentExplanation string   `json:"student_explanation"`
}

// RecommendationsRequest is the body for POST /quiz/recommendations.
type RecommendationsRequest struct {
	Subject    string           `json:"subject"`
	Topic      string           `json:"topic"`
	ClassLevel string           `json:"class_level"`
	Difficulty string           `json:"difficulty"`
	Results    []QuestionResult `json:"results"`
}

// RecommendationSet is the structured feedback returned for a submitted
// quiz.
type RecommendationSet struct {
	Summary       string   `json:"summary"`
	Breakdown     []string `json:"breakdown"`
	LearningPath  []string `json:"learning_path"`
	StrongTopics  []string `json:"strong_topics"`
	NeedsPractice []string `json:"needs_practice"`
}

type recommendationsResponse struct {
	Recommendations RecommendationSet `json:"recommendations"`
}

// StudyPlanRequest is the body for POST /tutor/generate-study-plan.
type StudyPlanRequest struct {
	PlanName          string   `json:"plan_name"`
	GradeLevel        string   `json:"grade_level"`
	Subject           string   `json:"subject"`
	Topics            []string `json:"topics"`
	ExamDate          string   `json:"exam_date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	PreferredTime     string   `json:"preferred_time"`
	StudyIntensity    string   `json:"study_intensity"`
	SessionDuration   string   `json:"session_duration"`
	UseGoogleCalendar bool     `json:"use_google_calendar"`
}

// DailySession is one scheduled study block.
type DailySession struct {
	Day                string   `json:"day"`
	Time               string   `json:"time"`
	Activity           string   `json:"activity"`
	Duration           string   `json:"duration"`
	FocusTopic         string   `json:"focus_topic"`
	LearningObjectives []string `json:"learning_objectives"`
}

// WeekPlan is one week of the generated schedule.
type WeekPlan struct {
	Week          int            `json:"week"`
	FocusTopics   []string       `json:"focus_topics"`
	DailySchedule []DailySession `json:"daily_schedule"`
	WeeklyGoals   []string       `json:"weekly_goals"`
}

// TopicPriority ranks one topic in the generated plan.
type TopicPriority struct {
	Topic          string   `json:"topic"`
	Priority       string   `json:"priority"`
	TimeAllocation string   `json:"time_allocation"`
	Difficulty     string   `json:"difficulty"`
	Definition     string   `json:"definition"`
	KeyConcepts    []string `json:"key_concepts"`
}

// TopicStrategy is the per-topic study approach.
type TopicStrategy struct {
	Topic       string   `json:"topic"`
	Definition  string   `json:"definition"`
	SubTopics   []string `json:"sub_topics"`
	KeyConcepts []string `json:"key_concepts"`
	Formulas    []string `json:"formulas"`
}

// StudyPlan is the generated plan, consumed read-only by the planner
// view. Fields the view doesn't interpret stay as loose maps.
type StudyPlan struct {
	PlanName      string   `json:"plan_name"`
	Subject       string   `json:"subject"`
	Topics        []string `json:"topics"`
	ExamDate      string   `json:"exam_date"`
	ExamTime      string   `json:"exam_time"`
	DaysUntilExam int      `json:"days_until_exam"`
	GradeLevel    string   `json:"grade_level"`
	StudySchedule struct {
		WeeklyBreakdown []WeekPlan `json:"weekly_breakdown"`
	} `json:"study_schedule"`
	TopicPrioritization []TopicPriority  `json:"topic_prioritization"`
	StudyStrategies     []TopicStrategy  `json:"study_strategies"`
	Milestones          []map[string]any `json:"milestones"`
	DetailedTopicInfo   map[string]any   `json:"detailed_topic_info"`
	Recommendations     map[string]any   `json:"recommendations"`
}

type studyPlanResponse struct {
	StudyPlan StudyPlan `json:"study_plan"`
}

// AuthRequest is the body for the login and signup endpoints. Name is
// only sent on signup.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AuthResponse is the body returned by login and signup.
type AuthResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}
