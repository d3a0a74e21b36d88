package quizflow

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/api"
	"github.com/hcl-ram/AI-Tutor-sf/internal/flow"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
	"github.com/hcl-ram/AI-Tutor-sf/internal/quizgen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/recommend"
	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
	"github.com/hcl-ram/AI-Tutor-sf/internal/store"
)

// mockGenerator implements quizgen.Generator for testing.
type mockGenerator struct {
	questions []quiz.Question
	err       error
	calls     int
}

func (m *mockGenerator) Generate(_ context.Context, _ quizgen.Spec) ([]quiz.Question, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

func (m *mockGenerator) Source() string { return "llm" }

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents   []store.QuizEventData
	answerEvents []store.AnswerEventData
	planEvents   []store.PlanEventData
}

func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendPlanEvent(_ context.Context, data store.PlanEventData) error {
	m.planEvents = append(m.planEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RecentLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) AttemptAnswers(_ context.Context, _ string) ([]store.AnswerEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) StatsBySubject(_ context.Context) ([]store.SubjectStats, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentPlans(_ context.Context, _ store.QueryOpts) ([]store.PlanEventData, error) {
	return nil, nil
}

// stubRecsAPI serves canned recommendations.
type stubRecsAPI struct {
	set *api.RecommendationSet
	err error
}

func (s *stubRecsAPI) Recommendations(_ context.Context, _ api.RecommendationsRequest) (*api.RecommendationSet, error) {
	return s.set, s.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{Text: "2 + 2 = ?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: 1, Explanation: "2 + 2 = 4", Hint: "count up"},
		{Text: "3 * 3 = ?", Options: []string{"6", "7", "9", "12"}, CorrectIndex: 2, Explanation: "3 * 3 = 9"},
	}
}

func testScreen(gen *mockGenerator, recsAPI *stubRecsAPI) (*QuizFlowScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	if recsAPI == nil {
		recsAPI = &stubRecsAPI{set: &api.RecommendationSet{Summary: "good job"}}
	}
	s := New(gen, recommend.New(recsAPI, nil), events)
	return s, events
}

// submitAndSettle presses submit and delivers the feedback reply, which
// is what finally opens the results stage.
func submitAndSettle(t *testing.T, s *QuizFlowScreen) {
	t.Helper()
	if _, cmd := s.Update(keyPress('s')); cmd == nil {
		t.Fatal("expected submit commands")
	}
	if s.ctrl.Step() != flow.Quiz || !s.ctrl.AwaitingFeedback() {
		t.Fatalf("step = %v, want Quiz awaiting feedback", s.ctrl.Step())
	}
	s.Update(s.fetchRecommendations()())
	if s.ctrl.Step() != flow.Results {
		t.Fatalf("step = %v, want Results after the fetch settles", s.ctrl.Step())
	}
}

// walkToQuiz drives the screen from class selection into an active quiz.
func walkToQuiz(t *testing.T, s *QuizFlowScreen) {
	t.Helper()
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // class
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // subject
	_, cmd := scr.Update(specialKey(tea.KeyEnter)) // chapter, starts generation
	if cmd == nil {
		t.Fatal("expected a generation command after choosing a chapter")
	}
	s.Update(cmd())
	if s.ctrl.Step() != flow.Quiz {
		t.Fatalf("step = %v, want Quiz", s.ctrl.Step())
	}
}

func TestQuizFlow_StartsAtClassSelection(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	if s.ctrl.Step() != flow.SelectClass {
		t.Errorf("step = %v, want SelectClass", s.ctrl.Step())
	}
	if s.Title() != "Choose Class" {
		t.Errorf("Title = %q, want %q", s.Title(), "Choose Class")
	}
}

func TestQuizFlow_SelectionAdvances(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if s.ctrl.Step() != flow.SelectSubject {
		t.Fatalf("step = %v, want SelectSubject", s.ctrl.Step())
	}
	if s.ctrl.Selection().ClassLevel == "" {
		t.Error("expected a class level to be recorded")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if s.ctrl.Step() != flow.SelectChapter {
		t.Fatalf("step = %v, want SelectChapter", s.ctrl.Step())
	}
}

func TestQuizFlow_DifficultyAndLengthCycle(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	scr, _ = scr.Update(keyPress('d'))
	if got := s.ctrl.Selection().Difficulty; got != "hard" {
		t.Errorf("difficulty = %q, want %q", got, "hard")
	}
	scr, _ = scr.Update(keyPress('l'))
	if got := s.ctrl.Selection().NumQuestions; got != 10 {
		t.Errorf("num questions = %d, want 10", got)
	}
}

func TestQuizFlow_GenerationEntersQuizAndLogsStart(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions()}
	s, events := testScreen(gen, nil)
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command")
	}

	_, logCmd := s.Update(cmd())
	if s.ctrl.Step() != flow.Quiz {
		t.Fatalf("step = %v, want Quiz", s.ctrl.Step())
	}
	if logCmd == nil {
		t.Fatal("expected a start-event command")
	}
	logCmd()

	if len(events.quizEvents) != 1 || events.quizEvents[0].Action != "start" {
		t.Fatalf("quiz events = %+v, want one start event", events.quizEvents)
	}
	if events.quizEvents[0].AttemptID != s.ctrl.Session().ID {
		t.Error("start event attempt ID does not match the session")
	}
}

func TestQuizFlow_GenerationFailureStaysOnChapter(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	s, _ := testScreen(gen, nil)
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))

	s.Update(cmd())
	if s.ctrl.Step() != flow.SelectChapter {
		t.Errorf("step = %v, want SelectChapter", s.ctrl.Step())
	}
	if s.ctrl.Err() == "" {
		t.Error("expected an error message after a failed generation")
	}
	if s.ctrl.Loading() {
		t.Error("expected loading to be cleared")
	}
}

func TestQuizFlow_AnswerByLetter(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	a, err := s.ctrl.Session().Answer(0)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if a.SelectedIndex != 1 {
		t.Errorf("selected = %d, want 1", a.SelectedIndex)
	}
}

func TestQuizFlow_SubmitLogsAttemptAndAnswers(t *testing.T) {
	s, events := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b')) // correct answer for Q1
	submitAndSettle(t, s)

	// Run the batched command to flush the event log.
	logCmd := s.logSubmission()
	logCmd()

	var submit *store.QuizEventData
	for i := range events.quizEvents {
		if events.quizEvents[i].Action == "submit" {
			submit = &events.quizEvents[i]
		}
	}
	if submit == nil {
		t.Fatal("expected a submit event")
	}
	if submit.Score != 1 || submit.TotalQuestions != 2 {
		t.Errorf("submit = %+v, want score 1 of 2", submit)
	}
	if len(events.answerEvents) != 2 {
		t.Fatalf("answer events = %d, want 2", len(events.answerEvents))
	}
	if !events.answerEvents[0].Correct {
		t.Error("first answer should be recorded as correct")
	}
	if events.answerEvents[1].SelectedIndex != quiz.Unanswered {
		t.Error("second answer should be recorded as unanswered")
	}
}

func TestQuizFlow_RecommendationsShownOnResults(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	s.Update(keyPress('s'))

	cmd := s.fetchRecommendations()
	s.Update(cmd())

	if s.ctrl.Step() != flow.Results {
		t.Fatalf("step = %v, want Results", s.ctrl.Step())
	}
	if s.recs == nil || s.recs.Summary != "good job" {
		t.Errorf("recs = %+v, want summary %q", s.recs, "good job")
	}
}

func TestQuizFlow_RecommendationFailureKeepsRetry(t *testing.T) {
	recsAPI := &stubRecsAPI{err: errors.New("offline")}
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, recsAPI)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	s.Update(keyPress('s'))

	s.Update(s.fetchRecommendations()())
	if s.recsErr == "" {
		t.Fatal("expected a stored fetch error")
	}
	if s.ctrl.Step() != flow.Results {
		t.Fatalf("step = %v, want Results even when the fetch fails", s.ctrl.Step())
	}

	// Retry succeeds once the backend is back.
	recsAPI.err = nil
	recsAPI.set = &api.RecommendationSet{Summary: "better late"}
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	s.Update(cmd())
	if s.recs == nil || s.recs.Summary != "better late" {
		t.Errorf("recs = %+v after retry", s.recs)
	}
}

func TestQuizFlow_ResultsWaitForFeedbackFetch(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	s.Update(keyPress('s'))

	if s.ctrl.Step() != flow.Quiz || !s.ctrl.AwaitingFeedback() {
		t.Fatalf("step = %v, want the scored attempt held on Quiz", s.ctrl.Step())
	}
	// Navigation keys are dead while the fetch is in flight.
	s.Update(keyPress('t'))
	s.Update(specialKey(tea.KeyEnter))
	if s.ctrl.Step() != flow.Quiz {
		t.Fatalf("step = %v, keys should not leave the waiting stage", s.ctrl.Step())
	}

	s.Update(s.fetchRecommendations()())
	if s.ctrl.Step() != flow.Results {
		t.Fatalf("step = %v, want Results once the fetch settles", s.ctrl.Step())
	}
	if s.ctrl.AwaitingFeedback() {
		t.Error("nothing should be pending after the fetch settles")
	}
}

func TestQuizFlow_LateFeedbackAfterAbandonDropped(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	s.Update(keyPress('s'))
	lateReply := s.fetchRecommendations()()

	// Abandoning while waiting destroys the session, so the reply that
	// arrives afterwards must not resurrect it.
	s.Update(specialKey(tea.KeyEscape))
	s.Update(lateReply)

	if s.ctrl.Step() != flow.SelectChapter {
		t.Errorf("step = %v, want SelectChapter", s.ctrl.Step())
	}
	if s.recs != nil {
		t.Error("late feedback should be discarded")
	}
}

func TestQuizFlow_EscFromQuizAbandonsAttempt(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	if !s.HandlesEsc() {
		t.Fatal("expected the quiz stage to handle Esc itself")
	}
	s.Update(specialKey(tea.KeyEscape))
	if s.ctrl.Step() != flow.SelectChapter {
		t.Errorf("step = %v, want SelectChapter", s.ctrl.Step())
	}
	if s.ctrl.Session() != nil {
		t.Error("expected the session to be destroyed")
	}
}

func TestQuizFlow_StaleGenerationDropped(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	var scr screen.Screen = s

	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	staleMsg := cmd()

	// The learner backs out before the response lands.
	s.Update(specialKey(tea.KeyEscape))
	s.Update(staleMsg)

	if s.ctrl.Step() == flow.Quiz {
		t.Error("stale generation should not enter the quiz")
	}
	if s.ctrl.Session() != nil {
		t.Error("stale generation should not attach a session")
	}
}

func TestQuizFlow_ViewRendersEveryStage(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)

	if s.View(100, 40) == "" {
		t.Error("selection view should not be empty")
	}
	walkToQuiz(t, s)
	if s.View(100, 40) == "" {
		t.Error("quiz view should not be empty")
	}
	s.Update(keyPress('s'))
	if s.View(100, 40) == "" {
		t.Error("waiting view should not be empty")
	}
	s.Update(s.fetchRecommendations()())
	if s.View(100, 40) == "" {
		t.Error("results view should not be empty")
	}
	s.Update(keyPress('v'))
	if s.View(100, 40) == "" {
		t.Error("review view should not be empty")
	}
}

func TestQuizFlow_RetakeMissedQuestions(t *testing.T) {
	s, events := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b')) // Q1 right, Q2 left unanswered
	submitAndSettle(t, s)
	firstID := s.ctrl.Session().ID

	_, cmd := s.Update(keyPress('t'))
	if s.ctrl.Step() != flow.Quiz {
		t.Fatalf("step = %v, want Quiz", s.ctrl.Step())
	}
	sess := s.ctrl.Session()
	if sess.Len() != 1 {
		t.Fatalf("session length = %d, want only the missed question", sess.Len())
	}
	if sess.ID == firstID {
		t.Error("retake should run under a fresh attempt ID")
	}
	if !s.showHint {
		t.Error("retake should show hints from the start")
	}
	if cmd == nil {
		t.Fatal("expected a retry start event command")
	}
	cmd()

	var retried bool
	for _, e := range events.quizEvents {
		if e.Action == "retry" && e.AttemptID == sess.ID {
			retried = true
		}
	}
	if !retried {
		t.Error("expected a retry start event")
	}

	// Submitting the retake is logged as practice, not a second attempt.
	s.Update(keyPress('c'))
	s.Update(keyPress('s'))
	s.logSubmission()()

	var practice *store.QuizEventData
	for i := range events.quizEvents {
		if events.quizEvents[i].Action == "practice" {
			practice = &events.quizEvents[i]
		}
	}
	if practice == nil {
		t.Fatal("expected a practice submit event")
	}
	if practice.Score != 1 || practice.TotalQuestions != 1 {
		t.Errorf("practice = %+v, want 1 of 1", practice)
	}
}

func TestQuizFlow_RetakeUnavailableOnPerfectScore(t *testing.T) {
	s, _ := testScreen(&mockGenerator{questions: sampleQuestions()}, nil)
	walkToQuiz(t, s)

	s.Update(keyPress('b'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('c'))
	submitAndSettle(t, s)

	s.Update(keyPress('t'))
	if s.ctrl.Step() != flow.Results {
		t.Errorf("step = %v, a perfect score has nothing to retake", s.ctrl.Step())
	}
}
