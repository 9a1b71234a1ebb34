package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/ui/theme"
)

// OrderList renders a reorderable step list. The engine owns the working
// sequence; the screen feeds updated items back with SetItems after each
// move, so the component never reorders anything itself.
type OrderList struct {
	Prompt string

	items  []string
	cursor int
}

// NewOrderList creates a list over the initial working sequence.
func NewOrderList(prompt string, items []string) OrderList {
	return OrderList{Prompt: prompt, items: items}
}

// SetItems replaces the displayed sequence, keeping the cursor in range.
func (o *OrderList) SetItems(items []string) {
	o.items = items
	if o.cursor >= len(items) {
		o.cursor = len(items) - 1
	}
}

// Cursor returns the index of the highlighted step.
func (o OrderList) Cursor() int { return o.cursor }

// CursorUp moves the highlight one step up.
func (o *OrderList) CursorUp() {
	if o.cursor > 0 {
		o.cursor--
	}
}

// CursorDown moves the highlight one step down.
func (o *OrderList) CursorDown() {
	if o.cursor < len(o.items)-1 {
		o.cursor++
	}
}

// FollowMoveUp keeps the highlight on a step that was just moved up.
func (o *OrderList) FollowMoveUp() {
	o.CursorUp()
}

// FollowMoveDown keeps the highlight on a step that was just moved down.
func (o *OrderList) FollowMoveDown() {
	o.CursorDown()
}

// View renders the numbered step list.
func (o OrderList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, item := range o.items {
		line := fmt.Sprintf("  %d. %s", i+1, item)
		if i == o.cursor {
			line = fmt.Sprintf("▸ %d. %s", i+1, item)
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Body.Render(line) + "\n"
		}
	}

	return s
}
