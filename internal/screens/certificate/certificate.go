// Package certificate renders the name-entry step that closes the
// practicum. A blank name re-prompts; anything else finishes the run.
package certificate

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/components"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// Screen is the certificate name-entry screen.
type Screen struct {
	eng   *session.Engine
	input components.TextInput
}

// New creates the certificate screen.
func New(eng *session.Engine) Screen {
	return Screen{
		eng:   eng,
		input: components.NewTextInput("Your full name", 60),
	}
}

func (s Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		err := s.eng.SubmitCertificateName(s.input.Value())
		if errors.Is(err, session.ErrEmptyName) {
			s.input.Error = "Enter your name as it should appear on the certificate."
			return s, nil
		}
		// Success advances the session; the app swaps this screen out.
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s Screen) View(width, height int) string {
	title := theme.Title.Render("You made it through the day!")
	sub := theme.Subtitle.Render("Sign your certificate to complete the practicum.")

	inputBox := theme.Card.Render(s.input.View())
	body := title + "\n\n" + sub + "\n\n" + inputBox

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) Title() string {
	return "Certificate"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
