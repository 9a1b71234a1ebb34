package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
)

// stubScreen is a minimal screen for testing.
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

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "hub"}
	r := New(s1)

	s2 := &stubScreen{title: "task"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "task" {
		t.Errorf("expected active 'task', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "hub"}
	r := New(s1)

	r.Push(&stubScreen{title: "task"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "hub" {
		t.Errorf("expected active 'hub', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "hub"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceResetsStack(t *testing.T) {
	r := New(&stubScreen{title: "hub"})
	r.Push(&stubScreen{title: "task"})
	r.Push(&stubScreen{title: "subtask"})

	next := &stubScreen{title: "next-stage"}
	r.Replace(next)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "next-stage" {
		t.Errorf("expected active 'next-stage', got %q", r.Active().Title())
	}
	if !next.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestReplaceStackMsg(t *testing.T) {
	r := New(&stubScreen{title: "hub"})
	r.Push(&stubScreen{title: "task"})

	next := &stubScreen{title: "next-stage"}
	r.Update(ReplaceStackMsg{Screen: next})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "next-stage" {
		t.Errorf("expected active 'next-stage', got %q", r.Active().Title())
	}
	if !next.initRan {
		t.Error("expected Init() to run via ReplaceStackMsg")
	}
}
