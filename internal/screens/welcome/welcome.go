package welcome

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/screen"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/components"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/layout"
	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// Screen is the landing screen shown before the practicum starts.
type Screen struct {
	menu components.Menu
}

// New creates the welcome screen. start is invoked when the learner
// begins the practicum.
func New(start func() tea.Cmd) Screen {
	return Screen{
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Begin the practicum", Action: start},
			{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
		}),
	}
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s Screen) View(width, height int) string {
	title := theme.Title.Render("Doctor's Office — Level 1")
	sub := theme.Subtitle.Render("Your first shift at the front desk. Pass the intake quiz,\nwork the office, and earn your certificate.")

	body := title + "\n\n" + sub + "\n\n\n" + s.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) Title() string {
	return "Welcome"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
