// Package phonecall renders the scheduling call: an ordered dialog of
// single-choice steps where a wrong response repeats the step.
package phonecall

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/router"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/components"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// Screen is the phone-call task screen.
type Screen struct {
	eng *session.Engine

	choice  components.MultiChoice
	stepID  string
	message string
}

// New creates the phone-call screen positioned at the active step.
func New(eng *session.Engine) Screen {
	s := Screen{eng: eng}
	s.loadStep()
	return s
}

func (s *Screen) loadStep() {
	if step, ok := s.eng.Content().Room.Call.Active(); ok {
		s.stepID = step.ID
		s.choice = components.NewMultiChoice(step.Prompt, step.Candidates)
	}
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if s.eng.Content().Room.Call.Done() {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	if s.eng.Content().Room.Call.Done() {
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if answer, ok := s.choice.Chosen(); ok {
		_, err := s.eng.SubmitSingleChoice(s.stepID, answer)
		switch {
		case errors.Is(err, exercise.ErrRetryRequired):
			s.message = "The caller sounds confused. Try a different response."
			s.choice.Reset()
		case err != nil:
			s.choice.Reset()
		default:
			s.message = ""
			s.loadStep()
		}
	}
	return s, cmd
}

func (s Screen) View(width, height int) string {
	var body string

	call := s.eng.Content().Room.Call
	if call.Done() {
		body = theme.Correct.Render("Appointment booked — the caller thanks you and hangs up.") +
			"\n\n" + theme.Hint.Render("Press enter to return to the office.")
	} else {
		progress := theme.Hint.Render(fmt.Sprintf("Call step %d of %d", call.StepIndex()+1, call.Len()))
		body = progress + "\n\n" + s.choice.View()
		if s.message != "" {
			body += "\n" + theme.Wrong.Render(s.message)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) Title() string {
	return "Phone Call"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Respond"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
