package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/hcl-ram/AI-Tutor-sf/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func sampleQuestion() quiz.Question {
	return quiz.Question{
		Text:         "2 + 2 = ?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
	}
}

func TestOptionList_LetterKeysChoose(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'a', 0},
		{'b', 1},
		{'c', 2},
		{'d', 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			o := NewOptionList(sampleQuestion(), quiz.Unanswered)
			o, changed := o.Update(keyPress(tt.key))
			assert.True(t, changed, "letter key must record a choice")
			assert.Equal(t, tt.want, o.Chosen)
			assert.Equal(t, tt.want, o.Cursor)
		})
	}
}

func TestOptionList_LetterKeyBeyondOptionsIgnored(t *testing.T) {
	q := sampleQuestion()
	q.Options = q.Options[:2]

	o := NewOptionList(q, quiz.Unanswered)
	o, changed := o.Update(keyPress('d'))
	assert.False(t, changed)
	assert.Equal(t, quiz.Unanswered, o.Chosen)
}

func TestOptionList_CursorAndEnter(t *testing.T) {
	o := NewOptionList(sampleQuestion(), quiz.Unanswered)

	o, changed := o.Update(keyPress('j'))
	assert.False(t, changed, "moving the cursor is not a choice")
	assert.Equal(t, 1, o.Cursor)

	o, changed = o.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, changed)
	assert.Equal(t, 1, o.Chosen)
}

func TestOptionList_RevealedIsReadOnly(t *testing.T) {
	o := NewOptionList(sampleQuestion(), 0)
	o.Revealed = true

	o, changed := o.Update(keyPress('c'))
	assert.False(t, changed)
	assert.Equal(t, 0, o.Chosen)
}
