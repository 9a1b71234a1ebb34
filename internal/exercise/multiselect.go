package exercise

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/shuffle"
)

// MultiSelectItem is one member of a multi-select universe.
type MultiSelectItem struct {
	ID        string
	Label     string
	Defective bool
}

// MultiSelect is an exact-set selection exercise: the learner must select
// exactly Required items, and pass requires the selection to equal the
// defective subset with no extras and nothing missing.
type MultiSelect struct {
	ID       string
	Prompt   string
	Items    []MultiSelectItem // presentation order
	Required int

	selected map[string]bool
}

// NewMultiSelect builds a multi-select exercise over a shuffled universe.
// The universe must contain exactly required defective items, otherwise
// the exercise is ungradable and construction fails.
func NewMultiSelect(r *rand.Rand, id, prompt string, items []MultiSelectItem, required int) (*MultiSelect, error) {
	if required <= 0 || required > len(items) {
		return nil, fmt.Errorf("%w: multi-select %s requires %d of %d items", ErrUnsatisfiableConfiguration, id, required, len(items))
	}
	defective := 0
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: multi-select %s has duplicate item %s", ErrUnsatisfiableConfiguration, id, it.ID)
		}
		seen[it.ID] = true
		if it.Defective {
			defective++
		}
	}
	if defective != required {
		return nil, fmt.Errorf("%w: multi-select %s has %d defective items, need exactly %d", ErrUnsatisfiableConfiguration, id, defective, required)
	}

	return &MultiSelect{
		ID:       id,
		Prompt:   prompt,
		Items:    shuffle.Permutation(r, items),
		Required: required,
		selected: make(map[string]bool),
	}, nil
}

// Toggle flips the selection state of the given item and returns the
// updated selection set in presentation order.
func (m *MultiSelect) Toggle(itemID string) ([]string, error) {
	found := false
	for _, it := range m.Items {
		if it.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("multi-select %s: unknown item %s", m.ID, itemID)
	}

	if m.selected[itemID] {
		delete(m.selected, itemID)
	} else {
		m.selected[itemID] = true
	}
	return m.Selected(), nil
}

// Selected returns the selected item IDs in presentation order.
func (m *MultiSelect) Selected() []string {
	out := make([]string, 0, len(m.selected))
	for _, it := range m.Items {
		if m.selected[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

// IsSelected reports whether the given item is currently selected.
func (m *MultiSelect) IsSelected(itemID string) bool {
	return m.selected[itemID]
}

// Evaluate grades the current selection. A selection whose size differs
// from Required is rejected with ErrInvalidSelectionCount before any
// set comparison happens.
func (m *MultiSelect) Evaluate() (Outcome, error) {
	if len(m.selected) != m.Required {
		return Outcome{}, fmt.Errorf("%w: selected %d items, need exactly %d", ErrInvalidSelectionCount, len(m.selected), m.Required)
	}

	want := make([]string, 0, m.Required)
	for _, it := range m.Items {
		if it.Defective {
			want = append(want, it.ID)
		}
	}
	got := m.Selected()
	slices.Sort(want)
	slices.Sort(got)

	return Outcome{
		ExerciseID: m.ID,
		Passed:     slices.Equal(got, want),
	}, nil
}

// ItemIDs returns the item IDs in presentation order.
func (m *MultiSelect) ItemIDs() []string {
	ids := make([]string, len(m.Items))
	for i, it := range m.Items {
		ids[i] = it.ID
	}
	return ids
}
