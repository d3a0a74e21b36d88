package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hcl-ram/AI-Tutor-sf/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newStack(t *testing.T) (*Router, *stubScreen) {
	t.Helper()
	base := &stubScreen{title: "base"}
	return New(base), base
}

func TestRouter_PushRunsInitAndActivates(t *testing.T) {
	r, _ := newStack(t)
	next := &stubScreen{title: "next"}

	r.Push(next)

	if r.Depth() != 2 || r.Active() != screen.Screen(next) {
		t.Errorf("depth = %d active = %q", r.Depth(), r.Active().Title())
	}
	if !next.initRan {
		t.Error("pushed screen's Init did not run")
	}
}

func TestRouter_NavigationMessages(t *testing.T) {
	r, _ := newStack(t)

	pushed := &stubScreen{title: "pushed"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Depth() != 2 || !pushed.initRan {
		t.Fatalf("push via message: depth = %d, init = %v", r.Depth(), pushed.initRan)
	}

	swapped := &stubScreen{title: "swapped"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if r.Depth() != 2 || r.Active().Title() != "swapped" || !swapped.initRan {
		t.Fatalf("replace via message: depth = %d active = %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "base" {
		t.Errorf("pop via message: depth = %d active = %q", r.Depth(), r.Active().Title())
	}
}

func TestRouter_PopStopsAtBottom(t *testing.T) {
	r, base := newStack(t)

	r.Pop()

	if r.Depth() != 1 || r.Active() != screen.Screen(base) {
		t.Errorf("depth = %d after pop at bottom", r.Depth())
	}
}

func TestRouter_ReplaceKeepsDepth(t *testing.T) {
	r, _ := newStack(t)
	r.Push(&stubScreen{title: "second"})

	third := &stubScreen{title: "third"}
	r.Replace(third)

	if r.Depth() != 2 || r.Active().Title() != "third" {
		t.Errorf("depth = %d active = %q", r.Depth(), r.Active().Title())
	}
	if !third.initRan {
		t.Error("replacement screen's Init did not run")
	}
}
