package flow

import (
	"fmt"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

// Step identifies one stage of the guided quiz flow.
type Step int

const (
	// Hub is the landing stage with the flow entry points.
	Hub Step = iota

	// SelectClass, SelectSubject, and SelectChapter are the guided
	// selection stages, in order.
	SelectClass
	SelectSubject
	SelectChapter

	// Quiz is the active attempt; Results shows the scored outcome.
	Quiz
	Results
)

func (s Step) String() string {
	switch s {
	case Hub:
		return "hub"
	case SelectClass:
		return "select-class"
	case SelectSubject:
		return "select-subject"
	case SelectChapter:
		return "select-chapter"
	case Quiz:
		return "quiz"
	case Results:
		return "results"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Selection accumulates the learner's choices through the guided stages.
type Selection struct {
	ClassLevel   string // display label, e.g. "Class 10"
	Subject      string
	Chapter      string
	Difficulty   string
	NumQuestions int
}

// Controller drives the guided quiz flow. Movement between steps goes
// through an explicit transition table; any step change not listed there
// is rejected. The controller also owns the in-flight generation token so
// responses that arrive after the learner has moved on are dropped.
type Controller struct {
	step    Step
	sel     Selection
	session *quiz.Session

	generation uint64
	loading    bool
	errMsg     string

	// feedbackDone records that the post-quiz feedback fetch has settled
	// (succeeded or failed). The results stage is withheld until then.
	feedbackDone bool
}

// transitionGuard validates a single edge of the step graph.
type transitionGuard func(c *Controller) error

// transitions is the full step graph. Every legal edge is listed with the
// guard that must hold for the move.
var transitions = map[Step]map[Step]transitionGuard{
	Hub: {
		SelectClass: func(*Controller) error { return nil },
	},
	SelectClass: {
		Hub: func(*Controller) error { return nil },
		SelectSubject: func(c *Controller) error {
			if c.sel.ClassLevel == "" {
				return fmt.Errorf("class level not chosen")
			}
			return nil
		},
	},
	SelectSubject: {
		SelectClass: func(*Controller) error { return nil },
		SelectChapter: func(c *Controller) error {
			if c.sel.Subject == "" {
				return fmt.Errorf("subject not chosen")
			}
			return nil
		},
	},
	SelectChapter: {
		SelectSubject: func(*Controller) error { return nil },
		Quiz: func(c *Controller) error {
			if c.sel.Chapter == "" {
				return fmt.Errorf("chapter not chosen")
			}
			if c.session == nil {
				return fmt.Errorf("no quiz session attached")
			}
			return nil
		},
	},
	Quiz: {
		Results: func(c *Controller) error {
			if c.session == nil || !c.session.Submitted() {
				return fmt.Errorf("quiz not submitted")
			}
			if !c.feedbackDone {
				return fmt.Errorf("feedback fetch not settled")
			}
			return nil
		},
	},
	Results: {
		Hub: func(*Controller) error { return nil },
		Quiz: func(c *Controller) error {
			if c.session == nil {
				return fmt.Errorf("no session to retry")
			}
			return nil
		},
	},
}

// New creates a Controller positioned at the hub.
func New() *Controller {
	return &Controller{}
}

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Selection returns the accumulated choices.
func (c *Controller) Selection() Selection { return c.sel }

// Session returns the active quiz session, or nil outside Quiz/Results.
func (c *Controller) Session() *quiz.Session { return c.session }

// Loading reports whether a generation request is in flight.
func (c *Controller) Loading() bool { return c.loading }

// Err returns the stored error message shown on the current step.
func (c *Controller) Err() string { return c.errMsg }

// SetErr stores an error message for display. It also clears the loading
// flag since an error ends whatever was in flight.
func (c *Controller) SetErr(msg string) {
	c.errMsg = msg
	c.loading = false
}

// ClearErr removes the stored error message.
func (c *Controller) ClearErr() { c.errMsg = "" }

// transition moves to the target step if the table allows it.
func (c *Controller) transition(to Step) error {
	guard, ok := transitions[c.step][to]
	if !ok {
		return fmt.Errorf("flow: no transition %v -> %v", c.step, to)
	}
	if err := guard(c); err != nil {
		return fmt.Errorf("flow: %v -> %v blocked: %w", c.step, to, err)
	}
	c.step = to
	c.errMsg = ""
	return nil
}

// StartQuizFlow leaves the hub for the class selection stage.
func (c *Controller) StartQuizFlow() error {
	return c.transition(SelectClass)
}

// ChooseClass records the class level and advances. Changing class resets
// the downstream subject and chapter choices.
func (c *Controller) ChooseClass(classLevel string) error {
	if c.step != SelectClass {
		return fmt.Errorf("flow: cannot choose class at %v", c.step)
	}
	if classLevel != c.sel.ClassLevel {
		c.sel.Subject = ""
		c.sel.Chapter = ""
	}
	c.sel.ClassLevel = classLevel
	return c.transition(SelectSubject)
}

// ChooseSubject records the subject and advances. Changing subject resets
// the chapter choice.
func (c *Controller) ChooseSubject(subject string) error {
	if c.step != SelectSubject {
		return fmt.Errorf("flow: cannot choose subject at %v", c.step)
	}
	if subject != c.sel.Subject {
		c.sel.Chapter = ""
	}
	c.sel.Subject = subject
	return c.transition(SelectChapter)
}

// ChooseChapter records the chapter. The caller then starts generation;
// the flow stays on SelectChapter until the session arrives.
func (c *Controller) ChooseChapter(chapter string) error {
	if c.step != SelectChapter {
		return fmt.Errorf("flow: cannot choose chapter at %v", c.step)
	}
	c.sel.Chapter = chapter
	return nil
}

// SetDifficulty and SetNumQuestions record the quiz shape. They are
// available on any selection stage.
func (c *Controller) SetDifficulty(d string) { c.sel.Difficulty = d }

func (c *Controller) SetNumQuestions(n int) { c.sel.NumQuestions = n }

// Back moves one stage toward the hub. On Quiz it abandons the attempt.
func (c *Controller) Back() error {
	switch c.step {
	case SelectClass:
		return c.transition(Hub)
	case SelectSubject:
		return c.transition(SelectClass)
	case SelectChapter:
		c.cancelGeneration()
		return c.transition(SelectSubject)
	case Quiz:
		// Abandoning an attempt destroys the session.
		c.session = nil
		c.feedbackDone = false
		c.step = SelectChapter
		c.errMsg = ""
		return nil
	case Results:
		return c.transition(Hub)
	default:
		return fmt.Errorf("flow: nothing to go back to at %v", c.step)
	}
}

// BeginGeneration marks a generation request as in flight and returns the
// token the response must present. Starting a new request invalidates any
// earlier one still in flight.
func (c *Controller) BeginGeneration() uint64 {
	c.generation++
	c.loading = true
	c.errMsg = ""
	return c.generation
}

// CompleteGeneration attaches the generated questions and enters the quiz.
// Responses carrying a stale token are discarded: the learner has either
// started a newer request or left the chapter stage.
func (c *Controller) CompleteGeneration(token uint64, attemptID string, questions []quiz.Question) error {
	if token != c.generation || !c.loading {
		return nil // stale response, drop silently
	}
	c.loading = false

	if c.step != SelectChapter {
		return nil
	}

	c.session = quiz.NewSession(attemptID, questions)
	if err := c.transition(Quiz); err != nil {
		c.session = nil
		return err
	}
	return nil
}

// FailGeneration records a generation failure for the current request.
// Stale failures are dropped like stale successes.
func (c *Controller) FailGeneration(token uint64, msg string) {
	if token != c.generation || !c.loading {
		return
	}
	c.SetErr(msg)
}

// cancelGeneration invalidates any in-flight request without recording
// an error.
func (c *Controller) cancelGeneration() {
	c.generation++
	c.loading = false
}

// FinishQuiz submits the session. The flow stays on the quiz stage,
// scored but withheld, until FinishFeedback reports that the feedback
// fetch has settled. Submit is idempotent, so calling this twice is
// harmless.
func (c *Controller) FinishQuiz() error {
	if c.step != Quiz {
		return fmt.Errorf("flow: cannot finish quiz at %v", c.step)
	}
	if c.session == nil {
		return fmt.Errorf("flow: no active session")
	}
	if err := c.session.Submit(); err != nil {
		return err
	}
	c.feedbackDone = false
	return nil
}

// AwaitingFeedback reports that the session is submitted and the flow is
// holding on the quiz stage for the feedback fetch.
func (c *Controller) AwaitingFeedback() bool {
	return c.step == Quiz && c.session != nil && c.session.Submitted() && !c.feedbackDone
}

// FinishFeedback records that the feedback fetch settled and moves to the
// results stage. Success and failure both route through here; the results
// view shows whichever arrived. Calling it at Results is a no-op, covering
// manual re-fetches of failed feedback.
func (c *Controller) FinishFeedback() error {
	if c.step == Results {
		return nil
	}
	if c.step != Quiz {
		return fmt.Errorf("flow: no feedback pending at %v", c.step)
	}
	c.feedbackDone = true
	if err := c.transition(Results); err != nil {
		c.feedbackDone = false
		return err
	}
	return nil
}

// MissedQuestions returns the questions of the submitted session that were
// answered incorrectly or not at all.
func (c *Controller) MissedQuestions() []quiz.Question {
	if c.session == nil || !c.session.Submitted() {
		return nil
	}
	var missed []quiz.Question
	for i := 0; i < c.session.Len(); i++ {
		correct, err := c.session.IsCorrect(i)
		if err != nil || correct {
			continue
		}
		q, err := c.session.Question(i)
		if err != nil {
			continue
		}
		missed = append(missed, q)
	}
	return missed
}

// RetryMissed starts a fresh pass over the missed questions of the
// submitted session. The new session replaces the old one and the flow
// re-enters the quiz stage.
func (c *Controller) RetryMissed(attemptID string) error {
	if c.step != Results {
		return fmt.Errorf("flow: cannot retry at %v", c.step)
	}
	missed := c.MissedQuestions()
	if len(missed) == 0 {
		return fmt.Errorf("flow: every answer was correct, nothing to retry")
	}
	prev := c.session
	c.session = quiz.NewSession(attemptID, missed)
	if err := c.transition(Quiz); err != nil {
		c.session = prev
		return err
	}
	c.feedbackDone = false
	return nil
}

// StartOver abandons everything: the selection, the session, and any
// in-flight generation, returning to the hub.
func (c *Controller) StartOver() {
	c.cancelGeneration()
	c.sel = Selection{}
	c.session = nil
	c.feedbackDone = false
	c.errMsg = ""
	c.step = Hub
}
