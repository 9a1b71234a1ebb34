// Package audit renders the end-of-day audit: the misfiled-chart pull and
// the document page review. Pages can be re-judged until the audit closes,
// so a changed answer moves the correct-page count in either direction.
package audit

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

type mode int

const (
	modeMenu mode = iota
	modeCharts
	modePages
	modePage
)

// Screen is the audit task screen.
type Screen struct {
	eng *session.Engine

	mode   mode
	cursor int // menu or page-list cursor, depending on mode

	checklist components.Checklist
	chartsMsg string

	docIndex int
	pageID   string
	choice   components.MultiChoice
}

// New creates the audit screen.
func New(eng *session.Engine) Screen {
	s := Screen{eng: eng}

	charts := eng.Content().Room.Audit.Charts()
	items := make([]components.ChecklistItem, 0, len(charts.Items))
	for _, it := range charts.Items {
		items = append(items, components.ChecklistItem{ID: it.ID, Label: it.Label})
	}
	s.checklist = components.NewChecklist(charts.Prompt, items)
	s.checklist.SetChecked(charts.Selected())
	return s
}

func (s Screen) Init() tea.Cmd {
	return nil
}

func (s Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeCharts:
		return s.updateCharts(msg)
	case modePages:
		return s.updatePages(msg)
	case modePage:
		return s.updatePage(msg)
	default:
		return s.updateMenu(msg)
	}
}

func (s Screen) updateMenu(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	docs := s.eng.Content().Room.Audit.Documents()
	rows := 1 + len(docs) // charts entry first, then one per document

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < rows-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor == 0 {
			s.mode = modeCharts
		} else {
			s.docIndex = s.cursor - 1
			s.cursor = 0
			s.mode = modePages
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s Screen) updateCharts(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	chartsID := s.eng.Content().Room.Audit.Charts().ID
	switch kmsg.String() {
	case "up", "k":
		s.checklist.CursorUp()
	case "down", "j":
		s.checklist.CursorDown()
	case " ", "space":
		selected, err := s.eng.ToggleMultiSelect(chartsID, s.checklist.Cursor())
		if err == nil {
			s.checklist.SetChecked(selected)
			s.chartsMsg = ""
		}
	case "enter":
		out, err := s.eng.SubmitMultiSelect(chartsID)
		switch {
		case errors.Is(err, exercise.ErrInvalidSelectionCount):
			s.chartsMsg = theme.Wrong.Render("Pull exactly two charts before submitting.")
		case err != nil:
			// Not reachable from this screen's flow; ignore.
		case out.Passed:
			s.chartsMsg = theme.Correct.Render("Those are the misfiled charts. Re-filed.")
		default:
			s.chartsMsg = theme.Wrong.Render("That's not the right pair. Look again.")
		}
	case "esc":
		s.mode = modeMenu
		s.cursor = 0
	}
	return s, nil
}

func (s Screen) updatePages(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	doc := s.eng.Content().Room.Audit.Documents()[s.docIndex]
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(doc.Pages)-1 {
			s.cursor++
		}
	case "enter":
		page := doc.Pages[s.cursor]
		opts, ok := s.eng.Content().PageOptions(page.ID)
		if !ok {
			return s, nil
		}
		s.pageID = page.ID
		s.choice = components.NewMultiChoice("Review: "+page.Title, opts)
		s.mode = modePage
	case "esc":
		s.mode = modeMenu
		s.cursor = s.docIndex + 1
	}
	return s, nil
}

func (s Screen) updatePage(msg tea.Msg) (screen.Screen, tea.Cmd) {
	doc := s.eng.Content().Room.Audit.Documents()[s.docIndex]

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.backToPages(doc)
			return s, nil
		case "enter":
			if _, chosen := s.choice.Chosen(); chosen {
				s.backToPages(doc)
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if option, ok := s.choice.Chosen(); ok {
		out, err := s.eng.SelectDocumentPageOption(doc.ID, s.pageID, option)
		if err != nil {
			s.choice.Reset()
			return s, cmd
		}
		s.choice.SetResult(out.Passed)
	}
	return s, cmd
}

func (s *Screen) backToPages(doc exercise.Document) {
	s.mode = modePages
	for i, p := range doc.Pages {
		if p.ID == s.pageID {
			s.cursor = i
		}
	}
}

func (s Screen) View(width, height int) string {
	var body string
	switch s.mode {
	case modeCharts:
		body = s.checklist.View()
		if s.chartsMsg != "" {
			body += "\n" + s.chartsMsg
		}
	case modePages:
		body = s.pagesView()
	case modePage:
		body = s.choice.View()
		if _, chosen := s.choice.Chosen(); chosen {
			body += "\n" + theme.Hint.Render("Press enter to go back, or revisit this page later to change your call.")
		}
	default:
		body = s.menuView()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s Screen) menuView() string {
	audit := s.eng.Content().Room.Audit

	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("End-of-day audit")
	body := header + "\n\n"

	chartStatus := theme.Dimmed.Render("pending")
	if audit.ChartsPassed() {
		chartStatus = theme.Correct.Render("✓ done")
	}
	rows := []string{fmt.Sprintf("Misfiled charts  %s", chartStatus)}

	for _, d := range audit.Documents() {
		judged := 0
		for _, p := range d.Pages {
			if _, ok := audit.PageSelection(p.ID); ok {
				judged++
			}
		}
		rows = append(rows, fmt.Sprintf("%s  %s", d.Title,
			theme.Dimmed.Render(fmt.Sprintf("%d/%d pages reviewed", judged, len(d.Pages)))))
	}

	for i, row := range rows {
		if i == s.cursor {
			body += theme.Selected.Render("▸ "+row) + "\n"
		} else {
			body += theme.Body.Render("  "+row) + "\n"
		}
	}

	body += "\n" + theme.Hint.Render(fmt.Sprintf(
		"Pages judged correctly: %d of %d required", audit.CorrectPages(), audit.RequiredPages))
	if audit.Done() {
		body += "\n" + theme.Correct.Render("Audit complete.")
	}
	return body
}

func (s Screen) pagesView() string {
	audit := s.eng.Content().Room.Audit
	doc := audit.Documents()[s.docIndex]

	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(doc.Title)
	body := header + "\n\n"

	for i, p := range doc.Pages {
		status := theme.Dimmed.Render("unreviewed")
		if sel, ok := audit.PageSelection(p.ID); ok {
			status = theme.Body.Render(sel)
		}
		line := fmt.Sprintf("  %s  %s", p.Title, status)
		if i == s.cursor {
			line = fmt.Sprintf("▸ %s  %s", p.Title, status)
			body += theme.Selected.Render(line) + "\n"
		} else {
			body += theme.Body.Render(line) + "\n"
		}
	}
	return body
}

func (s Screen) Title() string {
	return "Chart Audit"
}

// KeyHints implements screen.KeyHintProvider.
func (s Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeCharts {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
