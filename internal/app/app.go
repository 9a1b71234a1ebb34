package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/content"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/router"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/certificate"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/quiz"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/room"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/summary"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screens/welcome"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/session"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
)

// transitions collects stage completions emitted by the engine while a
// screen's Update is still on the stack. The model drains it after every
// router dispatch, so the screen swap happens on the same frame.
type transitions struct {
	events []session.StageComplete
}

func (t *transitions) push(ev session.StageComplete) {
	t.events = append(t.events, ev)
}

func (t *transitions) drain() []session.StageComplete {
	evs := t.events
	t.events = nil
	return evs
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	eng     *session.Engine
	pending *transitions
	width   int
	height  int
}

func newAppModel(eng *session.Engine, pending *transitions) AppModel {
	m := AppModel{
		eng:     eng,
		pending: pending,
	}
	m.router = router.New(welcome.New(func() tea.Cmd {
		return func() tea.Msg {
			return router.ReplaceStackMsg{Screen: quiz.New(eng)}
		}
	}))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)

	// A submission may have closed out the current stage; swap the whole
	// stack for the next stage's screen.
	for _, ev := range m.pending.drain() {
		if next, ok := m.screenAfter(ev.Stage); ok {
			cmd = tea.Batch(cmd, m.router.Replace(next))
		}
	}
	return m, cmd
}

func (m AppModel) screenAfter(s session.Stage) (screen.Screen, bool) {
	switch s {
	case session.StageQuiz:
		return room.New(m.eng), true
	case session.StageRoom:
		return certificate.New(m.eng), true
	case session.StageCertificate:
		return summary.New(m.eng), true
	}
	return nil, false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.eng.Score(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run wires a fresh engine over the instantiated content and starts the
// Bubble Tea program. rec may be nil when no attempt log is available.
func Run(sessionID string, cs *content.Session, rec session.Recorder) error {
	pending := &transitions{}
	eng := session.New(sessionID, cs, pending.push, rec)

	p := tea.NewProgram(newAppModel(eng, pending))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
