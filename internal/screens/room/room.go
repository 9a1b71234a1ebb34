// Package room renders the office hub. The phone rings first; the binder
// and the audit stay locked until the call is finished, then open up in
// any order.
package room

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/router"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/audit"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/binder"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/phonecall"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// ringMsg fires once shortly after the learner enters the office.
type ringMsg struct{}

// Screen is the office hub screen.
type Screen struct {
	eng *session.Engine

	ringing bool
	cursor  int
}

// New creates the office hub.
func New(eng *session.Engine) Screen {
	return Screen{eng: eng}
}

func (s Screen) Init() tea.Cmd {
	return tea.Tick(800*time.Millisecond, func(time.Time) tea.Msg {
		return ringMsg{}
	})
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(ringMsg); ok {
		s.ringing = true
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	callDone := s.eng.Content().Room.Call.Done()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < 2 && callDone {
			s.cursor++
		}
	case "enter":
		switch s.cursor {
		case 0:
			s.ringing = false
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: phonecall.New(s.eng)}
			}
		case 1:
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: binder.New(s.eng)}
			}
		case 2:
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: audit.New(s.eng)}
			}
		}
	}
	return s, nil
}

func (s Screen) View(width, height int) string {
	room := s.eng.Content().Room

	title := theme.Title.Render("The Front Desk")
	sub := theme.Subtitle.Render("Work through the morning: take the call, code the binder,\nand close out with the audit.")

	rows := []struct {
		label  string
		status string
		locked bool
	}{
		{label: "Answer the phone", status: s.callStatus()},
		{label: "Coding binder", status: taskStatus(room.Binder.Done()), locked: !room.Call.Done()},
		{label: "Chart audit", status: taskStatus(room.Audit.Done()), locked: !room.Call.Done()},
	}

	var menu string
	for i, row := range rows {
		line := row.label + "  " + row.status
		switch {
		case row.locked:
			menu += theme.Locked.Render("    "+row.label+"  (finish the call first)") + "\n"
		case i == s.cursor:
			menu += theme.Selected.Render("  ▸ "+line) + "\n"
		default:
			menu += theme.Body.Render("    "+line) + "\n"
		}
	}

	body := title + "\n\n" + sub + "\n\n\n" + menu

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) callStatus() string {
	switch {
	case s.eng.Content().Room.Call.Done():
		return theme.Correct.Render("✓ done")
	case s.ringing:
		return theme.Wrong.Render("☎ ringing!")
	default:
		return theme.Dimmed.Render("quiet… for now")
	}
}

func taskStatus(done bool) string {
	if done {
		return theme.Correct.Render("✓ done")
	}
	return theme.Dimmed.Render("pending")
}

func (s Screen) Title() string {
	return "The Office"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
