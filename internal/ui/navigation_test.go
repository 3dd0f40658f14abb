package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	uistate "github.com/atomicstack/tmux-multiselect/internal/ui/state"
)

func TestFocusNeedsTags(t *testing.T) {
	h, _ := newTestModel(t, Options{})
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if h.Model().list.Focus != uistate.FocusList {
		t.Fatalf("tag focus requires a selection")
	}
	if h.Model().infoMsg != "nothing selected yet" {
		t.Fatalf("expected info, got %q", h.Model().infoMsg)
	}
}

func TestTagRemoveKeepsOrder(t *testing.T) {
	h, store := newTestModel(t, Options{}, "apple", "banana", "cherry")
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if h.Model().list.Focus != uistate.FocusTags {
		t.Fatalf("expected tag focus")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	h.Send(keyRunes("x"))
	if got := store.Values(); !equalValues(got, []string{"apple", "cherry"}) {
		t.Fatalf("expected banana removed, got %v", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := store.Values(); !equalValues(got, []string{"apple"}) {
		t.Fatalf("expected cherry removed, got %v", got)
	}
	if h.Model().list.TagCursor != 0 {
		t.Fatalf("expected tag cursor clamped, got %d", h.Model().list.TagCursor)
	}
	h.Send(keyRunes("x"))
	if h.Model().list.Focus != uistate.FocusList {
		t.Fatalf("removing the last tag must return focus to the list")
	}
}

func TestSortableTagsReorder(t *testing.T) {
	h, store := newTestModel(t, Options{Sortable: true}, "apple", "banana", "cherry")
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.Send(keyRunes("L"))
	if got := store.Values(); !equalValues(got, []string{"banana", "apple", "cherry"}) {
		t.Fatalf("expected apple moved right, got %v", got)
	}
	if h.Model().list.TagCursor != 1 {
		t.Fatalf("expected tag cursor to follow, got %d", h.Model().list.TagCursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftRight})
	if got := store.Values(); !equalValues(got, []string{"banana", "cherry", "apple"}) {
		t.Fatalf("expected apple moved to the end, got %v", got)
	}
	h.Send(keyRunes("L"))
	if got := store.Values(); !equalValues(got, []string{"banana", "cherry", "apple"}) {
		t.Fatalf("moving past the end must be a no-op, got %v", got)
	}
}

func TestUnsortableTagsIgnoreReorder(t *testing.T) {
	h, store := newTestModel(t, Options{}, "apple", "banana")
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.Send(keyRunes("L"))
	if got := store.Values(); !equalValues(got, []string{"apple", "banana"}) {
		t.Fatalf("expected order unchanged, got %v", got)
	}
}

func TestEscapeLeavesTagFocusThenCancels(t *testing.T) {
	h, _ := newTestModel(t, Options{}, "apple")
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.Model().list.Focus != uistate.FocusList || h.Quit() {
		t.Fatalf("escape in tag focus must only return to the list")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() || h.Model().Outcome().Status != StatusCancelled {
		t.Fatalf("expected cancel on second escape")
	}
}

func TestEscapeClearsSearchBeforeCancel(t *testing.T) {
	h := NewHarness(newSearchModel(0))
	h.Type("b")
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if h.Quit() {
		t.Fatalf("first escape must clear the search")
	}
	if h.Model().list.Applied != "" {
		t.Fatalf("expected search cleared")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() {
		t.Fatalf("expected cancel")
	}
}

func TestCursorHomeAndEnd(t *testing.T) {
	h, _ := newTestModel(t, Options{})
	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	if h.Model().list.Cursor != len(produce)-1 {
		t.Fatalf("expected cursor on last row, got %d", h.Model().list.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyHome})
	if h.Model().list.Cursor != 0 {
		t.Fatalf("expected cursor on first row, got %d", h.Model().list.Cursor)
	}
}
