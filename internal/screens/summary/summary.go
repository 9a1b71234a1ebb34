// Package summary renders the completed certificate and the final score.
package summary

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/content"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// Screen is the final certificate screen.
type Screen struct {
	eng *session.Engine
}

// New creates the summary screen.
func New(eng *session.Engine) Screen {
	return Screen{eng: eng}
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s Screen) View(width, height int) string {
	maxScore := len(s.eng.Content().QuizQuestions) * content.QuizQuestionPoints

	cert := theme.Card.Render(
		theme.Title.Render("Certificate of Completion") + "\n\n" +
			theme.Subtitle.Render("Doctor's Office Practicum — Level 1") + "\n\n" +
			theme.Body.Bold(true).Render(s.eng.Name()) + "\n\n" +
			theme.Body.Render(fmt.Sprintf("Quiz score: %d / %d", s.eng.Score(), maxScore)) + "\n" +
			theme.Body.Render("Phone call, coding binder, and chart audit: complete"),
	)

	body := cert + "\n\n" + theme.Hint.Render("Press enter to leave the office.")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) Title() string {
	return "All Done"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Exit"},
	}
}
