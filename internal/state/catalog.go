// Package state holds the caller-owned data the picker renders: the option
// catalog and the ordered list of selected values.
package state

import "github.com/atomicstack/tmux-multiselect/internal/selection"

// CatalogStore keeps the current option catalog.
type CatalogStore interface {
	Options() []selection.Option
	// SetOptions replaces the catalog and reports whether it changed.
	SetOptions([]selection.Option) bool
	Generation() int
}

type catalogStore struct {
	options    []selection.Option
	generation int
}

func NewCatalogStore(initial []selection.Option) CatalogStore {
	return &catalogStore{options: selection.CloneOptions(initial)}
}

func (s *catalogStore) Options() []selection.Option {
	return s.options
}

func (s *catalogStore) SetOptions(options []selection.Option) bool {
	if equalOptions(s.options, options) {
		return false
	}
	s.options = selection.CloneOptions(options)
	s.generation++
	return true
}

func (s *catalogStore) Generation() int {
	return s.generation
}

func equalOptions(a, b []selection.Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
