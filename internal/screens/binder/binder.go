// Package binder renders the coding binder: a stack of patient cases
// answerable in any order, where re-filing a case overwrites the old code.
package binder

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/router"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/components"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeCase
)

// Screen is the coding-binder task screen.
type Screen struct {
	eng *session.Engine

	mode   mode
	cursor int

	caseID string
	choice components.MultiChoice
}

// New creates the binder screen over the session's cases.
func New(eng *session.Engine) Screen {
	return Screen{eng: eng}
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mode == modeCase {
		return s.updateCase(msg)
	}
	return s.updateList(msg)
}

func (s Screen) updateList(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	cases := s.eng.Content().Room.Binder.Cases()
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(cases)-1 {
			s.cursor++
		}
	case "enter":
		c := cases[s.cursor]
		s.caseID = c.ID
		s.choice = components.NewMultiChoice(c.Prompt, c.Candidates)
		s.mode = modeCase
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s Screen) updateCase(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			return s, nil
		case "enter":
			if _, graded := s.choice.Chosen(); graded {
				// Verdict shown; enter returns to the case list.
				s.mode = modeList
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if answer, ok := s.choice.Chosen(); ok {
		out, err := s.eng.SubmitSingleChoice(s.caseID, answer)
		if err != nil {
			s.choice.Reset()
			return s, cmd
		}
		s.choice.SetResult(out.Passed)
	}
	return s, cmd
}

func (s Screen) View(width, height int) string {
	var body string

	if s.mode == modeCase {
		body = s.choice.View()
		if _, graded := s.choice.Chosen(); graded {
			body += "\n" + theme.Hint.Render("Press enter to return to the binder.")
		}
	} else {
		body = s.listView()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) listView() string {
	binder := s.eng.Content().Room.Binder

	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Assign the right code to each case.")
	body := header + "\n\n"

	for i, c := range binder.Cases() {
		status := theme.Dimmed.Render("unfiled")
		if out, ok := binder.Outcome(c.ID); ok {
			if out.Passed {
				status = theme.Correct.Render("✓ filed")
			} else {
				status = theme.Wrong.Render("✗ wrong code")
			}
		}
		line := fmt.Sprintf("  %s  %s", c.Prompt, status)
		if i == s.cursor {
			line = fmt.Sprintf("▸ %s  %s", c.Prompt, status)
			body += theme.Selected.Render(line) + "\n"
		} else {
			body += theme.Body.Render(line) + "\n"
		}
	}

	if binder.Done() {
		body += "\n" + theme.Correct.Render("Every case is coded correctly. Nice work.")
	}
	return body
}

func (s Screen) Title() string {
	return "Coding Binder"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
