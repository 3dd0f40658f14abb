package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/selection"
	"github.com/atomicstack/tmux-multiselect/internal/state"
)

var produce = []selection.Option{
	{Label: "Apple", Value: "apple"},
	{Label: "Banana", Value: "banana"},
	{Label: "Cherry", Value: "cherry"},
}

type recordingSink struct {
	delivered [][]string
	err       error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Deliver(values []string) error {
	s.delivered = append(s.delivered, append([]string(nil), values...))
	return s.err
}

var errSinkDown = errors.New("sink down")

func newTestModel(t *testing.T, opts Options, selected ...string) (*Harness, state.SelectionStore) {
	t.Helper()
	if opts.Catalog == nil {
		opts.Catalog = state.NewCatalogStore(produce)
	}
	if opts.Selection == nil {
		opts.Selection = state.NewSelectionStore(selected)
	}
	return NewHarness(NewModel(opts)), opts.Selection
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyAlt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func equalValues(a, b []string) bool {
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

func optionsFromValues(values []string) []selection.Option {
	out := make([]selection.Option, len(values))
	for i, v := range values {
		out[i] = selection.Option{Label: v, Value: v}
	}
	return out
}
