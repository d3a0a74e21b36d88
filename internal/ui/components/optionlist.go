package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

// OptionList renders the A-D options of one quiz question. Unlike a
// one-shot selector, the chosen option can be changed any number of times
// until the whole quiz is submitted; Revealed switches the list into the
// read-only review rendering.
type OptionList struct {
	Question string
	Options  []string

	// Cursor is the highlighted option; Chosen is the recorded answer
	// (quiz.Unanswered when none yet).
	Cursor int
	Chosen int

	// Revealed shows the correct/incorrect coloring after submit.
	Revealed     bool
	CorrectIndex int
}

// NewOptionList creates an option list for one question.
func NewOptionList(q quiz.Question, chosen int) OptionList {
	cursor := chosen
	if cursor == quiz.Unanswered {
		cursor = 0
	}
	return OptionList{
		Question:     q.Text,
		Options:      q.Options,
		Cursor:       cursor,
		Chosen:       chosen,
		CorrectIndex: q.CorrectIndex,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and choice. It reports whether the chosen
// option changed so the caller can record the answer.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Revealed {
		return o, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, false
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "a", "b", "c", "d":
		// Answer letters are stored uppercase on the wire.
		if idx, err := quiz.LetterToIndex(strings.ToUpper(kmsg.String())); err == nil && idx < len(o.Options) {
			o.Cursor = idx
			o.Chosen = idx
			return o, true
		}
	case "enter", " ":
		o.Chosen = o.Cursor
		return o, true
	}

	return o, false
}

// View renders the option list.
func (o OptionList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		letter, err := quiz.IndexToLetter(i)
		if err != nil {
			letter = "?"
		}

		marker := " "
		if i == o.Chosen {
			marker = "●"
		}
		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, letter, opt)

		if o.Revealed {
			switch {
			case i == o.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == o.Chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// Answered reports whether an option has been chosen.
func (o OptionList) Answered() bool {
	return o.Chosen != quiz.Unanswered
}
