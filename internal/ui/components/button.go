package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/ui/theme"
)

// Button is a styled button component. A disabled button renders in the
// inactive style and ignores key presses; validation failures disable the
// submit control instead of erroring.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && b.OnPress != nil {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
