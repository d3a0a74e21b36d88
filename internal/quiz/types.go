package quiz

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// Question is a single generated quiz question. Immutable once received
// from the generator.
type Question struct {
	// Text is the question prompt shown to the student.
	Text string

	// Options holds exactly four answer options, in display order.
	Options []string

	// CorrectIndex is the 0-based index of the correct option.
	CorrectIndex int

	// Explanation is the worked solution shown after submission.
	Explanation string

	// Hint is an optional scaffolding hint. Empty if none was generated.
	Hint string
}

// AnswerRecord is the student's in-progress answer to one question.
type AnswerRecord struct {
	// SelectedIndex is the chosen option, or -1 while unanswered.
	SelectedIndex int

	// Rationale is the student's optional free-text reasoning.
	Rationale string
}

// Unanswered marks an AnswerRecord with no selection yet.
const Unanswered = -1

// Answered reports whether an option has been selected.
func (a AnswerRecord) Answered() bool {
	return a.SelectedIndex != Unanswered
}
