package ui

import (
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-multiselect/internal/search"
)

// searchSettleMsg fires when the debounce delay for token has passed.
type searchSettleMsg struct {
	token search.Token
}

// handleTextInput edits the draft search text. It reports whether the key
// was consumed and returns the debounce command when the draft changed.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.opts.WithSearch {
		return false, nil
	}
	l := m.list
	switch msg.String() {
	case "ctrl+u":
		if !l.ClearDraft() {
			return false, nil
		}
		events.Filter.Cleared(m.id)
		return true, m.draftChanged()
	case "ctrl+w":
		if !l.DeleteDraftWordBackward() {
			return false, nil
		}
		events.Filter.WordBackspace(m.id, l.Draft)
		return true, m.draftChanged()
	case "ctrl+a":
		if !l.MoveDraftCursorStart() {
			return false, nil
		}
		events.Filter.Cursor(m.id, l.DraftCursor)
		return true, nil
	case "ctrl+e":
		if !l.MoveDraftCursorEnd() {
			return false, nil
		}
		events.Filter.Cursor(m.id, l.DraftCursor)
		return true, nil
	case "alt+b":
		if !l.MoveDraftCursorWordBackward() {
			return false, nil
		}
		events.Filter.CursorWord(m.id, l.DraftCursor)
		return true, nil
	case "alt+f":
		if !l.MoveDraftCursorWordForward() {
			return false, nil
		}
		events.Filter.CursorWord(m.id, l.DraftCursor)
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !l.DeleteDraftRuneBackward() {
			return false, nil
		}
		events.Filter.Backspace(m.id, l.Draft)
		return true, m.draftChanged()
	case tea.KeyDelete:
		if !l.DeleteDraftRuneForward() {
			return false, nil
		}
		events.Filter.Backspace(m.id, l.Draft)
		return true, m.draftChanged()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		l.InsertDraftText(string(msg.Runes))
		events.Filter.Append(m.id, l.Draft)
		return true, m.draftChanged()
	case tea.KeySpace:
		l.InsertDraftText(" ")
		events.Filter.Append(m.id, l.Draft)
		return true, m.draftChanged()
	case tea.KeyLeft:
		if !l.MoveDraftCursorRuneBackward() {
			return false, nil
		}
		events.Filter.Cursor(m.id, l.DraftCursor)
		return true, nil
	case tea.KeyRight:
		if !l.MoveDraftCursorRuneForward() {
			return false, nil
		}
		events.Filter.Cursor(m.id, l.DraftCursor)
		return true, nil
	}
	return false, nil
}

// draftChanged schedules the debounced search. A zero delay applies the
// draft straight away.
func (m *Model) draftChanged() tea.Cmd {
	m.errMsg = ""
	m.forceClearInfo()
	delay := m.debouncer.Delay()
	if delay <= 0 {
		m.applySearch()
		return nil
	}
	token := m.debouncer.Trigger()
	if token == 0 {
		return nil
	}
	events.Filter.Scheduled(m.id, uint64(token), m.list.Draft)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchSettleMsg{token: token}
	})
}

func (m *Model) handleSearchSettleMsg(msg tea.Msg) tea.Cmd {
	settle, ok := msg.(searchSettleMsg)
	if !ok {
		return nil
	}
	if !m.debouncer.Settle(settle.token) {
		events.Filter.Dropped(m.id, uint64(settle.token))
		return nil
	}
	m.applySearch()
	return nil
}

// applySearch makes the draft the applied search text.
func (m *Model) applySearch() {
	if !m.list.ApplyDraft() {
		return
	}
	events.Filter.Settled(m.id, m.list.Applied, len(m.list.Items))
	m.syncViewport()
}

// resetSearch drops both draft and applied text without waiting.
func (m *Model) resetSearch() bool {
	if m.list.Draft == "" && m.list.Applied == "" {
		return false
	}
	m.debouncer.Cancel()
	m.list.ClearDraft()
	m.applySearch()
	events.Filter.Cleared(m.id)
	return true
}

func (m *Model) filterPrompt() string {
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	render := func(value string) string {
		if styles.Filter == nil || value == "" {
			return value
		}
		return styles.Filter.Render(value)
	}
	l := m.list
	if l.Draft == "" {
		runes := []rune(m.msgs.Search)
		caret, rest := " ", ""
		if len(runes) > 0 {
			caret, rest = string(runes[0]), string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			rest = styles.FilterPlaceholder.Render(rest)
		}
		m.filterCursor.SetChar(caret)
		return prompt + m.filterCursor.View() + rest
	}
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	caret, after := " ", ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = string(runes[pos+1:])
	}
	m.filterCursor.SetChar(caret)
	line := prompt + render(string(runes[:pos])) + m.filterCursor.View() + render(after)
	if l.DraftPending() && styles.FilterPending != nil {
		line += " " + styles.FilterPending.Render("…")
	}
	return line
}
