package flow

import (
	"testing"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Text: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
	}
}

// walkToChapter advances a fresh controller to SelectChapter with a full
// selection.
func walkToChapter(t *testing.T) *Controller {
	t.Helper()
	c := New()
	if err := c.StartQuizFlow(); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseClass("Class 10"); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseSubject("Mathematics"); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseChapter("Algebra"); err != nil {
		t.Fatal(err)
	}
	return c
}

// walkToQuiz additionally completes generation.
func walkToQuiz(t *testing.T) *Controller {
	t.Helper()
	c := walkToChapter(t)
	token := c.BeginGeneration()
	if err := c.CompleteGeneration(token, "attempt-1", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Quiz {
		t.Fatalf("expected Quiz, got %v", c.Step())
	}
	return c
}

func TestFlow_HappyPath(t *testing.T) {
	c := New()
	if c.Step() != Hub {
		t.Fatalf("expected Hub, got %v", c.Step())
	}

	if err := c.StartQuizFlow(); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectClass {
		t.Fatalf("expected SelectClass, got %v", c.Step())
	}

	if err := c.ChooseClass("Class 10"); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectSubject {
		t.Fatalf("expected SelectSubject, got %v", c.Step())
	}

	if err := c.ChooseSubject("Mathematics"); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectChapter {
		t.Fatalf("expected SelectChapter, got %v", c.Step())
	}

	if err := c.ChooseChapter("Algebra"); err != nil {
		t.Fatal(err)
	}
	// Choosing a chapter does not advance by itself.
	if c.Step() != SelectChapter {
		t.Fatalf("expected SelectChapter, got %v", c.Step())
	}

	token := c.BeginGeneration()
	if !c.Loading() {
		t.Fatal("expected loading during generation")
	}
	if err := c.CompleteGeneration(token, "attempt-1", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Quiz || c.Loading() {
		t.Fatalf("expected Quiz and not loading, got %v loading=%v", c.Step(), c.Loading())
	}
	if c.Session() == nil || c.Session().Len() != 2 {
		t.Fatal("expected session with 2 questions")
	}

	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	if !c.Session().Submitted() {
		t.Fatal("expected submitted session")
	}
	// The scored attempt is withheld until the feedback fetch settles.
	if c.Step() != Quiz || !c.AwaitingFeedback() {
		t.Fatalf("expected Quiz awaiting feedback, got %v", c.Step())
	}

	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Results {
		t.Fatalf("expected Results, got %v", c.Step())
	}
}

func TestFlow_IllegalTransitionsRejected(t *testing.T) {
	c := New()

	if err := c.ChooseClass("Class 10"); err == nil {
		t.Error("expected error choosing class at hub")
	}
	if err := c.FinishQuiz(); err == nil {
		t.Error("expected error finishing quiz at hub")
	}
	if err := c.Back(); err == nil {
		t.Error("expected error going back from hub")
	}
	if c.Step() != Hub {
		t.Fatalf("expected to stay at Hub, got %v", c.Step())
	}
}

func TestFlow_SubjectChangeResetsChapter(t *testing.T) {
	c := walkToChapter(t)

	// Go back and pick a different subject.
	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseSubject("Science"); err != nil {
		t.Fatal(err)
	}

	sel := c.Selection()
	if sel.Subject != "Science" {
		t.Errorf("subject = %q, want Science", sel.Subject)
	}
	if sel.Chapter != "" {
		t.Errorf("chapter = %q, want reset", sel.Chapter)
	}
}

func TestFlow_SameSubjectKeepsChapter(t *testing.T) {
	c := walkToChapter(t)

	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseSubject("Mathematics"); err != nil {
		t.Fatal(err)
	}

	if got := c.Selection().Chapter; got != "Algebra" {
		t.Errorf("chapter = %q, want Algebra", got)
	}
}

func TestFlow_ClassChangeResetsDownstream(t *testing.T) {
	c := walkToChapter(t)

	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if err := c.ChooseClass("Class 9"); err != nil {
		t.Fatal(err)
	}

	sel := c.Selection()
	if sel.Subject != "" || sel.Chapter != "" {
		t.Errorf("expected subject and chapter reset, got %+v", sel)
	}
}

func TestFlow_StaleGenerationDropped(t *testing.T) {
	c := walkToChapter(t)

	stale := c.BeginGeneration()
	fresh := c.BeginGeneration()

	// The stale response must not attach a session or change the step.
	if err := c.CompleteGeneration(stale, "attempt-stale", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectChapter || c.Session() != nil {
		t.Fatalf("stale response applied: step=%v session=%v", c.Step(), c.Session())
	}
	if !c.Loading() {
		t.Fatal("expected still loading for the fresh request")
	}

	if err := c.CompleteGeneration(fresh, "attempt-fresh", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Quiz {
		t.Fatalf("expected Quiz, got %v", c.Step())
	}
	if c.Session().ID != "attempt-fresh" {
		t.Errorf("session id = %q, want attempt-fresh", c.Session().ID)
	}
}

func TestFlow_StaleFailureDropped(t *testing.T) {
	c := walkToChapter(t)

	stale := c.BeginGeneration()
	fresh := c.BeginGeneration()

	c.FailGeneration(stale, "network unreachable")
	if c.Err() != "" {
		t.Fatalf("stale failure stored: %q", c.Err())
	}

	c.FailGeneration(fresh, "network unreachable")
	if c.Err() != "network unreachable" {
		t.Fatalf("expected stored error, got %q", c.Err())
	}
	if c.Loading() {
		t.Fatal("expected loading cleared after failure")
	}
	if c.Step() != SelectChapter {
		t.Fatalf("expected to stay at SelectChapter, got %v", c.Step())
	}
}

func TestFlow_BackFromChapterCancelsGeneration(t *testing.T) {
	c := walkToChapter(t)

	token := c.BeginGeneration()
	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if c.Loading() {
		t.Fatal("expected loading cleared on back")
	}

	// The in-flight response arrives after the learner left the stage.
	if err := c.CompleteGeneration(token, "attempt-late", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectSubject || c.Session() != nil {
		t.Fatalf("late response applied: step=%v", c.Step())
	}
}

func TestFlow_BackFromQuizAbandonsSession(t *testing.T) {
	c := walkToQuiz(t)

	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if c.Step() != SelectChapter {
		t.Fatalf("expected SelectChapter, got %v", c.Step())
	}
	if c.Session() != nil {
		t.Fatal("expected session destroyed")
	}
	// Selection survives so the learner can regenerate.
	if c.Selection().Chapter != "Algebra" {
		t.Errorf("chapter = %q, want Algebra", c.Selection().Chapter)
	}
}

func TestFlow_FinishQuizIdempotent(t *testing.T) {
	c := walkToQuiz(t)

	if err := c.Session().RecordAnswer(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	score1, err := c.Session().Score()
	if err != nil {
		t.Fatal(err)
	}

	// Finishing again while awaiting feedback is harmless.
	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	score2, err := c.Session().Score()
	if err != nil {
		t.Fatal(err)
	}
	if score1 != score2 {
		t.Errorf("score changed: %d -> %d", score1, score2)
	}

	// Finishing at Results is rejected.
	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishQuiz(); err == nil {
		t.Error("expected error finishing at Results")
	}
}

func TestFlow_ResultsWaitForFeedbackFetch(t *testing.T) {
	c := walkToQuiz(t)

	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}

	// Submitting alone must not reach the results stage; the feedback
	// fetch has not settled yet.
	if c.Step() != Quiz {
		t.Fatalf("expected Quiz before the fetch settles, got %v", c.Step())
	}
	if !c.AwaitingFeedback() {
		t.Fatal("expected to be awaiting feedback")
	}

	// Settling the fetch, success or failure alike, opens the door.
	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Results {
		t.Fatalf("expected Results, got %v", c.Step())
	}
	if c.AwaitingFeedback() {
		t.Fatal("still awaiting feedback at Results")
	}
}

func TestFlow_FinishFeedbackRequiresSubmission(t *testing.T) {
	c := walkToQuiz(t)

	if err := c.FinishFeedback(); err == nil {
		t.Fatal("expected error before submission")
	}
	if c.Step() != Quiz {
		t.Fatalf("expected to stay at Quiz, got %v", c.Step())
	}

	// A flow with no quiz at all has no feedback pending either.
	if err := New().FinishFeedback(); err == nil {
		t.Fatal("expected error at hub")
	}
}

func TestFlow_StartOverResetsEverything(t *testing.T) {
	c := walkToQuiz(t)

	c.StartOver()

	if c.Step() != Hub {
		t.Fatalf("expected Hub, got %v", c.Step())
	}
	if c.Session() != nil {
		t.Fatal("expected session destroyed")
	}
	if sel := c.Selection(); sel != (Selection{}) {
		t.Errorf("expected empty selection, got %+v", sel)
	}
	if c.Loading() || c.Err() != "" {
		t.Error("expected loading and error cleared")
	}
}

func TestFlow_StartOverInvalidatesInFlight(t *testing.T) {
	c := walkToChapter(t)
	token := c.BeginGeneration()

	c.StartOver()

	if err := c.CompleteGeneration(token, "attempt-late", testQuestions()); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Hub || c.Session() != nil {
		t.Fatalf("late response applied after start over: step=%v", c.Step())
	}
}

func TestFlow_ResultsBackToHub(t *testing.T) {
	c := walkToQuiz(t)
	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}

	if err := c.Back(); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Hub {
		t.Fatalf("expected Hub, got %v", c.Step())
	}
}

func TestFlow_ErrClearedOnTransition(t *testing.T) {
	c := New()
	c.SetErr("network unreachable")
	if err := c.StartQuizFlow(); err != nil {
		t.Fatal(err)
	}
	if c.Err() != "" {
		t.Fatalf("expected error cleared, got %q", c.Err())
	}
}

func TestFlow_RetryMissedReentersQuiz(t *testing.T) {
	c := walkToQuiz(t)
	// Q1 right, Q2 wrong.
	if err := c.Session().RecordAnswer(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Session().RecordAnswer(1, 3); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}

	missed := c.MissedQuestions()
	if len(missed) != 1 || missed[0].Text != "Q2" {
		t.Fatalf("expected only Q2 missed, got %+v", missed)
	}

	if err := c.RetryMissed("attempt-2"); err != nil {
		t.Fatal(err)
	}
	if c.Step() != Quiz {
		t.Fatalf("expected Quiz, got %v", c.Step())
	}
	sess := c.Session()
	if sess.ID != "attempt-2" || sess.Len() != 1 {
		t.Fatalf("expected fresh 1-question session, got id=%q len=%d", sess.ID, sess.Len())
	}
	if sess.Submitted() {
		t.Fatal("retry session must start unsubmitted")
	}
}

func TestFlow_RetryMissedRejectedOnPerfectScore(t *testing.T) {
	c := walkToQuiz(t)
	if err := c.Session().RecordAnswer(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Session().RecordAnswer(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishQuiz(); err != nil {
		t.Fatal(err)
	}
	if err := c.FinishFeedback(); err != nil {
		t.Fatal(err)
	}

	if err := c.RetryMissed("attempt-2"); err == nil {
		t.Fatal("expected retry to be rejected with nothing missed")
	}
	if c.Step() != Results {
		t.Fatalf("expected Results, got %v", c.Step())
	}
}

func TestFlow_RetryMissedOnlyFromResults(t *testing.T) {
	c := walkToQuiz(t)
	if err := c.RetryMissed("attempt-2"); err == nil {
		t.Fatal("expected retry to be rejected before submission")
	}
}
