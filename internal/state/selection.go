package state

import "github.com/atomicstack/tmux-multiselect/internal/selection"

// SelectionStore is the single source of truth for the selected values.
// Repeated values are kept once, at their first position.
type SelectionStore interface {
	Values() []string
	SetValues([]string)
}

type selectionStore struct {
	values []string
}

func NewSelectionStore(initial []string) SelectionStore {
	return &selectionStore{values: cloneValues(selection.UniqueValues(initial))}
}

func (s *selectionStore) Values() []string {
	return cloneValues(s.values)
}

func (s *selectionStore) SetValues(values []string) {
	s.values = cloneValues(selection.UniqueValues(values))
}

func cloneValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
