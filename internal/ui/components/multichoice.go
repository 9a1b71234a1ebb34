package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only navigates and
// reports the highlighted option; grading lives in the engine, and the
// owning screen paints the result back with SetResult.
type MultiChoice struct {
	Prompt  string
	Options []string

	cursor int
	chosen int
	graded bool
	passed bool
}

// NewMultiChoice creates a selector over the given options.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
		chosen:  -1,
	}
}

// Update handles keyboard navigation. Enter marks the highlighted option
// as chosen; the screen submits it to the engine.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.graded {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.Options)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
	}

	return m, nil
}

// Chosen returns the option confirmed with enter, or false if none yet.
func (m MultiChoice) Chosen() (string, bool) {
	if m.chosen < 0 {
		return "", false
	}
	return m.Options[m.chosen], true
}

// SetResult paints the engine's verdict for the chosen option.
func (m *MultiChoice) SetResult(passed bool) {
	m.graded = true
	m.passed = passed
}

// Reset clears the choice and any verdict so the learner can re-choose.
func (m *MultiChoice) Reset() {
	m.chosen = -1
	m.graded = false
	m.passed = false
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.cursor && !m.graded {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.graded && i == m.chosen && m.passed:
			s += theme.Correct.Render(line) + "\n"
		case m.graded && i == m.chosen:
			s += theme.Wrong.Render(line) + "\n"
		case m.graded:
			s += theme.Dimmed.Render(line) + "\n"
		case i == m.cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}

	return s
}
