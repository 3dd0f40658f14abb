package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	uistate "github.com/atomicstack/tmux-multiselect/internal/ui/state"
)

// toggleCurrent toggles the row under the cursor. The select-all row
// toggles everything.
func (m *Model) toggleCurrent() {
	row, ok := m.list.CurrentRow()
	if !ok {
		return
	}
	if row.Kind == uistate.RowSelectAll {
		m.toggleAll()
		return
	}
	if m.controller.ReadOnly() {
		m.setInfo("selection is read-only")
		return
	}
	wasSelected := m.controller.IsSelected(row.Option.Value)
	if !m.controller.Toggle(row.Option) {
		events.Selection.Rejected("toggle", row.Option.Value)
		if m.controller.LimitReached() {
			m.setInfo(fmt.Sprintf("selection limit of %d reached", m.controller.Limit()))
		}
		return
	}
	events.Selection.Toggle(row.Option.Value, !wasSelected)
}

func (m *Model) toggleAll() {
	if !m.controller.SelectAllEnabled() {
		events.Selection.Rejected("toggle-all", "")
		if m.controller.Limit() > 0 {
			m.setInfo("select all is unavailable with a selection limit")
		}
		return
	}
	if m.controller.AllSelected() {
		m.clearAll()
		return
	}
	if m.controller.SelectAll() {
		events.Selection.SelectAll(m.controller.Count())
	}
}

func (m *Model) clearAll() {
	if m.controller.ClearAll() {
		events.Selection.ClearAll()
	}
}

func (m *Model) removeTag(index int) {
	selected := m.controller.Selected()
	if index < 0 || index >= len(selected) {
		return
	}
	if m.controller.RemoveAt(index) {
		events.Selection.Remove(index, selected[index].Value)
	}
}

func (m *Model) moveTag(delta int) {
	if !m.opts.Sortable {
		return
	}
	from := m.list.TagCursor
	to := from + delta
	if !m.controller.Move(from, to) {
		return
	}
	m.list.TagCursor = to
	m.list.ClampTagCursor(m.controller.Count())
	events.Selection.Move(from, to)
}
