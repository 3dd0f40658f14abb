package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	uistate "github.com/atomicstack/tmux-multiselect/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.finished() {
		return nil
	}
	m.clearInfo()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.cancel()
	case key.Matches(keyMsg, m.keys.Focus):
		m.toggleFocus()
		return nil
	}
	if m.list.Focus == uistate.FocusTags {
		return m.handleTagKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleCurrent()
		return nil
	case key.Matches(keyMsg, m.keys.Space) && !m.opts.WithSearch:
		m.toggleCurrent()
		return nil
	case key.Matches(keyMsg, m.keys.ToggleAll):
		m.toggleAll()
		return nil
	case key.Matches(keyMsg, m.keys.ClearAll):
		m.clearAll()
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorUp)
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorDown)
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
		return nil
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome)
		return nil
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd)
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	return nil
}

func (m *Model) handleTagKey(msg tea.KeyMsg) tea.Cmd {
	count := m.controller.Count()
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Back):
		m.list.SetFocus(uistate.FocusList, count)
		events.UI.Focus(m.id, m.list.Focus.String())
	case key.Matches(msg, m.keys.MoveLeft):
		m.moveTag(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m.moveTag(1)
	case key.Matches(msg, m.keys.TagLeft):
		m.list.MoveTagCursor(-1, count)
	case key.Matches(msg, m.keys.TagRight):
		m.list.MoveTagCursor(1, count)
	case key.Matches(msg, m.keys.TagRemove):
		m.removeTag(m.list.TagCursor)
	case key.Matches(msg, m.keys.ClearAll):
		m.clearAll()
	}
	return nil
}

// handleEscapeKey backs out one step: tag focus is handled by the caller,
// then a search is cleared, then the picker is cancelled.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.resetSearch() {
		return nil
	}
	return m.cancel()
}

func (m *Model) toggleFocus() {
	next := uistate.FocusTags
	if m.list.Focus == uistate.FocusTags {
		next = uistate.FocusList
	}
	if !m.list.SetFocus(next, m.controller.Count()) {
		if next == uistate.FocusTags {
			m.setInfo("nothing selected yet")
		}
		return
	}
	events.UI.Focus(m.id, m.list.Focus.String())
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		m.syncViewport()
		events.UI.Cursor(m.id, m.list.Cursor)
	}
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) submit() tea.Cmd {
	values := m.controller.SelectedValues()
	m.outcome = Outcome{Status: StatusSubmitted, Values: values}
	m.teardown("submit")
	return m.bus.Execute(commandRequest(m.opts.Sink, values))
}

func (m *Model) cancel() tea.Cmd {
	m.outcome = Outcome{Status: StatusCancelled}
	m.teardown("cancel")
	return tea.Quit
}
