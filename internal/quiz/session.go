package quiz

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	ErrSubmitted    = errors.New("session already submitted")
	ErrNoQuestions  = errors.New("session has no questions")
	ErrNotSubmitted = errors.New("session not yet submitted")
)

// Session holds one quiz attempt: the generated questions, the student's
// answers, and the score once submitted. A Session is created when the
// guided flow enters the quiz step and replaced when a new quiz is
// requested.
type Session struct {
	// ID identifies this attempt in the local event log.
	ID string

	questions []Question
	answers   []AnswerRecord
	submitted bool
	score     int
}

// NewSession creates a Session over the given questions with all answers
// initially unanswered.
func NewSession(id string, questions []Question) *Session {
	answers := make([]AnswerRecord, len(questions))
	for i := range answers {
		answers[i].SelectedIndex = Unanswered
	}
	return &Session{
		ID:        id,
		questions: questions,
		answers:   answers,
	}
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Question returns the question at index i.
func (s *Session) Question(i int) (Question, error) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, fmt.Errorf("question index %d out of range", i)
	}
	return s.questions[i], nil
}

// Answer returns the answer record at index i.
func (s *Session) Answer(i int) (AnswerRecord, error) {
	if i < 0 || i >= len(s.answers) {
		return AnswerRecord{}, fmt.Errorf("answer index %d out of range", i)
	}
	return s.answers[i], nil
}

// RecordAnswer sets the selected option for a question. Legal only before
// submission.
func (s *Session) RecordAnswer(questionIndex, optionIndex int) error {
	if s.submitted {
		return ErrSubmitted
	}
	if questionIndex < 0 || questionIndex >= len(s.answers) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	if optionIndex < 0 || optionIndex >= OptionCount {
		return fmt.Errorf("option index %d out of range", optionIndex)
	}
	s.answers[questionIndex].SelectedIndex = optionIndex
	return nil
}

// RecordRationale sets the free-text rationale for a question. Legal only
// before submission.
func (s *Session) RecordRationale(questionIndex int, text string) error {
	if s.submitted {
		return ErrSubmitted
	}
	if questionIndex < 0 || questionIndex >= len(s.answers) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	s.answers[questionIndex].Rationale = text
	return nil
}

// Submit scores every question and freezes the session. Unanswered
// questions score as incorrect. Calling Submit on an already-submitted
// session is a no-op; submitting an empty session is an error.
func (s *Session) Submit() error {
	if s.submitted {
		return nil
	}
	if len(s.questions) == 0 {
		return ErrNoQuestions
	}

	score := 0
	for i, q := range s.questions {
		if s.answers[i].SelectedIndex == q.CorrectIndex {
			score++
		}
	}
	s.score = score
	s.submitted = true
	return nil
}

// Submitted reports whether the session has been scored.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Score returns the count of correct answers. Only defined after Submit.
func (s *Session) Score() (int, error) {
	if !s.submitted {
		return 0, ErrNotSubmitted
	}
	return s.score, nil
}

// IsCorrect reports whether question i was answered correctly. Only
// defined after Submit.
func (s *Session) IsCorrect(i int) (bool, error) {
	if !s.submitted {
		return false, ErrNotSubmitted
	}
	if i < 0 || i >= len(s.questions) {
		return false, fmt.Errorf("question index %d out of range", i)
	}
	return s.answers[i].SelectedIndex == s.questions[i].CorrectIndex, nil
}

// AnsweredCount returns how many questions have a selected option.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a.Answered() {
			n++
		}
	}
	return n
}
