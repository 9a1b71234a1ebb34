package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// ChecklistItem is one selectable row.
type ChecklistItem struct {
	ID    string
	Label string
}

// Checklist renders a multi-select list. Selection state lives in the
// engine; the screen mirrors it in with SetChecked after every toggle.
type Checklist struct {
	Prompt string
	Items  []ChecklistItem

	cursor  int
	checked map[string]bool
}

// NewChecklist creates a checklist over the given items.
func NewChecklist(prompt string, items []ChecklistItem) Checklist {
	return Checklist{
		Prompt:  prompt,
		Items:   items,
		checked: make(map[string]bool),
	}
}

// Cursor returns the ID of the highlighted item.
func (c Checklist) Cursor() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[c.cursor].ID
}

// CursorUp moves the highlight one row up.
func (c *Checklist) CursorUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// CursorDown moves the highlight one row down.
func (c *Checklist) CursorDown() {
	if c.cursor < len(c.Items)-1 {
		c.cursor++
	}
}

// SetChecked mirrors the engine's current selection set.
func (c *Checklist) SetChecked(ids []string) {
	c.checked = make(map[string]bool, len(ids))
	for _, id := range ids {
		c.checked[id] = true
	}
}

// View renders the checklist.
func (c Checklist) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"

	for i, item := range c.Items {
		box := "[ ]"
		if c.checked[item.ID] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, item.Label)

		switch {
		case i == c.cursor:
			s += theme.Selected.Render(line) + "\n"
		case c.checked[item.ID]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Body.Render(line) + "\n"
		}
	}

	return s
}
