package state

import "unicode"

// SetDraft replaces the typed search text without applying it.
func (l *List) SetDraft(text string, cursor int) {
	l.Draft = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.DraftCursor = cursor
}

// DraftCursorPos returns the rune offset of the draft cursor.
func (l *List) DraftCursorPos() int {
	runes := []rune(l.Draft)
	if l.DraftCursor < 0 {
		return 0
	}
	if l.DraftCursor > len(runes) {
		return len(runes)
	}
	return l.DraftCursor
}

// InsertDraftText inserts text at the draft cursor.
func (l *List) InsertDraftText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetDraft(string(updated), pos+len(insert))
	return true
}

// DeleteDraftRuneBackward deletes the rune before the draft cursor.
func (l *List) DeleteDraftRuneBackward() bool {
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetDraft(string(updated), pos-1)
	return true
}

// DeleteDraftRuneForward deletes the rune under the draft cursor.
func (l *List) DeleteDraftRuneForward() bool {
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	if pos >= len(runes) {
		return false
	}
	updated := append(runes[:pos], runes[pos+1:]...)
	l.SetDraft(string(updated), pos)
	return true
}

// DeleteDraftWordBackward deletes the word preceding the draft cursor.
func (l *List) DeleteDraftWordBackward() bool {
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	l.SetDraft(string(updated), i)
	return true
}

// ClearDraft empties the draft and reports whether anything was removed.
func (l *List) ClearDraft() bool {
	if l.Draft == "" {
		return false
	}
	l.SetDraft("", 0)
	return true
}

// MoveDraftCursorStart moves the draft cursor to the start.
func (l *List) MoveDraftCursorStart() bool {
	if l.DraftCursorPos() == 0 {
		return false
	}
	l.DraftCursor = 0
	return true
}

// MoveDraftCursorEnd moves the draft cursor to the end.
func (l *List) MoveDraftCursorEnd() bool {
	end := len([]rune(l.Draft))
	if l.DraftCursorPos() == end {
		return false
	}
	l.DraftCursor = end
	return true
}

// MoveDraftCursorWordBackward moves the draft cursor one word backward.
func (l *List) MoveDraftCursorWordBackward() bool {
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	l.DraftCursor = i
	return true
}

// MoveDraftCursorWordForward moves the draft cursor one word forward.
func (l *List) MoveDraftCursorWordForward() bool {
	runes := []rune(l.Draft)
	pos := l.DraftCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	l.DraftCursor = i
	return true
}

// MoveDraftCursorRuneBackward moves the draft cursor one rune backward.
func (l *List) MoveDraftCursorRuneBackward() bool {
	if l.DraftCursorPos() == 0 {
		return false
	}
	l.DraftCursor = l.DraftCursorPos() - 1
	return true
}

// MoveDraftCursorRuneForward moves the draft cursor one rune forward.
func (l *List) MoveDraftCursorRuneForward() bool {
	pos := l.DraftCursorPos()
	if pos >= len([]rune(l.Draft)) {
		return false
	}
	l.DraftCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
