package quiz

import (
	"errors"
	"testing"
)

func threeQuestions() []Question {
	return []Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{Text: "q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
	}
}

func TestSubmit_ScoresSelectedAnswers(t *testing.T) {
	s := NewSession("test", threeQuestions())

	// Selections [0, unanswered, 2] against correct [0, 1, 2].
	if err := s.RecordAnswer(0, 0); err != nil {
		t.Fatalf("record answer 0: %v", err)
	}
	if err := s.RecordAnswer(2, 2); err != nil {
		t.Fatalf("record answer 2: %v", err)
	}

	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	score, err := s.Score()
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 2 {
		t.Errorf("score = %d, want 2", score)
	}

	wantCorrect := []bool{true, false, true}
	for i, want := range wantCorrect {
		got, err := s.IsCorrect(i)
		if err != nil {
			t.Fatalf("IsCorrect(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("IsCorrect(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	s := NewSession("test", threeQuestions())
	if err := s.RecordAnswer(0, 0); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	first, _ := s.Score()

	// Changing answers after submit must be rejected.
	if err := s.RecordAnswer(1, 1); !errors.Is(err, ErrSubmitted) {
		t.Errorf("RecordAnswer after submit = %v, want ErrSubmitted", err)
	}
	if err := s.RecordRationale(1, "because"); !errors.Is(err, ErrSubmitted) {
		t.Errorf("RecordRationale after submit = %v, want ErrSubmitted", err)
	}

	// Second submit is a no-op and never re-scores.
	if err := s.Submit(); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	second, _ := s.Score()
	if second != first {
		t.Errorf("score changed on re-submit: %d -> %d", first, second)
	}
}

func TestSubmit_EmptySession(t *testing.T) {
	s := NewSession("test", nil)
	if err := s.Submit(); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("submit empty = %v, want ErrNoQuestions", err)
	}
	if s.Submitted() {
		t.Error("empty session must not become submitted")
	}
}

func TestScore_UndefinedBeforeSubmit(t *testing.T) {
	s := NewSession("test", threeQuestions())
	if _, err := s.Score(); !errors.Is(err, ErrNotSubmitted) {
		t.Errorf("Score before submit = %v, want ErrNotSubmitted", err)
	}
	if _, err := s.IsCorrect(0); !errors.Is(err, ErrNotSubmitted) {
		t.Errorf("IsCorrect before submit = %v, want ErrNotSubmitted", err)
	}
}

func TestUnansweredScoredIncorrect(t *testing.T) {
	s := NewSession("test", threeQuestions())
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	score, _ := s.Score()
	if score != 0 {
		t.Errorf("all-unanswered score = %d, want 0", score)
	}
	for i := 0; i < s.Len(); i++ {
		correct, _ := s.IsCorrect(i)
		if correct {
			t.Errorf("unanswered question %d scored correct", i)
		}
	}
}

func TestRecordAnswer_Bounds(t *testing.T) {
	s := NewSession("test", threeQuestions())
	if err := s.RecordAnswer(5, 0); err == nil {
		t.Error("expected error for out-of-range question index")
	}
	if err := s.RecordAnswer(0, 4); err == nil {
		t.Error("expected error for out-of-range option index")
	}
}
