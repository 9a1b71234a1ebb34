// Package quiz renders the intake quiz stage: four choice questions
// followed by the check-in ordering task. All grading happens in the
// session engine; this screen only collects input and paints verdicts.
package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/components"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

type mode int

const (
	modeQuestion mode = iota
	modeFeedback
	modeOrdering
)

// Screen is the quiz stage screen.
type Screen struct {
	eng *session.Engine

	mode       mode
	choice     components.MultiChoice
	order      components.OrderList
	questionID string
	feedback   string
	orderMsg   string
}

// New creates the quiz screen for the engine's current question.
func New(eng *session.Engine) Screen {
	s := Screen{eng: eng}
	if q, ok := eng.ActiveQuizQuestion(); ok {
		s.questionID = q.ID
		s.choice = components.NewMultiChoice(q.Prompt, q.Candidates)
	} else {
		s.enterOrdering()
	}
	return s
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeQuestion:
		return s.updateQuestion(msg)
	case modeFeedback:
		return s.updateFeedback(msg)
	default:
		return s.updateOrdering(msg)
	}
}

func (s Screen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if answer, ok := s.choice.Chosen(); ok {
		out, err := s.eng.SubmitSingleChoice(s.questionID, answer)
		if err != nil {
			// Nothing recoverable the learner can do; drop the input.
			return s, cmd
		}
		s.choice.SetResult(out.Passed)
		if out.Passed {
			s.feedback = "Correct!"
		} else {
			s.feedback = "Not quite."
		}
		s.mode = modeFeedback
	}
	return s, cmd
}

func (s Screen) updateFeedback(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return s, nil
	}

	if q, ok := s.eng.ActiveQuizQuestion(); ok {
		s.questionID = q.ID
		s.choice = components.NewMultiChoice(q.Prompt, q.Candidates)
		s.mode = modeQuestion
		s.feedback = ""
		return s, nil
	}

	s.enterOrdering()
	return s, nil
}

func (s *Screen) enterOrdering() {
	ord := s.eng.Content().QuizOrdering
	s.order = components.NewOrderList(ord.Prompt, ord.Working())
	s.mode = modeOrdering
}

func (s Screen) updateOrdering(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	ordID := s.eng.Content().QuizOrdering.ID
	switch kmsg.String() {
	case "up", "k":
		s.order.CursorUp()
	case "down", "j":
		s.order.CursorDown()
	case "shift+up", "K":
		items, err := s.eng.MoveOrderingItem(ordID, s.order.Cursor(), exercise.MoveUp)
		if err == nil {
			s.order.SetItems(items)
			s.order.FollowMoveUp()
			s.orderMsg = ""
		}
	case "shift+down", "J":
		items, err := s.eng.MoveOrderingItem(ordID, s.order.Cursor(), exercise.MoveDown)
		if err == nil {
			s.order.SetItems(items)
			s.order.FollowMoveDown()
			s.orderMsg = ""
		}
	case "enter":
		out, err := s.eng.SubmitOrdering(ordID)
		if err == nil && !out.Passed {
			s.orderMsg = "Not quite — keep rearranging."
		}
		// A pass completes the stage; the app swaps this screen out.
	}
	return s, nil
}

func (s Screen) View(width, height int) string {
	var body string

	switch s.mode {
	case modeQuestion, modeFeedback:
		answered, total := s.eng.QuizProgress()
		if s.mode == modeFeedback {
			answered-- // the just-answered question is still on screen
		}
		progress := theme.Hint.Render(fmt.Sprintf("Question %d of %d", answered+1, total))
		body = progress + "\n\n" + s.choice.View()
		if s.feedback != "" {
			style := theme.Wrong
			if s.feedback == "Correct!" {
				style = theme.Correct
			}
			body += "\n" + style.Render(s.feedback) + theme.Hint.Render("  (enter to continue)")
		}
	default:
		body = s.order.View()
		if s.orderMsg != "" {
			body += "\n" + theme.Wrong.Render(s.orderMsg)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) Title() string {
	return "Intake Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeOrdering {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Shift+↑↓", Description: "Move step"},
			{Key: "Enter", Description: "Check order"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
