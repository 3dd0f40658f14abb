package state

// ClampTagCursor keeps the tag cursor inside [0, count).
func (l *List) ClampTagCursor(count int) {
	if count <= 0 {
		l.TagCursor = 0
		return
	}
	if l.TagCursor < 0 {
		l.TagCursor = 0
	}
	if l.TagCursor >= count {
		l.TagCursor = count - 1
	}
}

// MoveTagCursor shifts the tag cursor by delta within count tags.
func (l *List) MoveTagCursor(delta, count int) bool {
	if count <= 0 {
		l.TagCursor = 0
		return false
	}
	old := l.TagCursor
	l.TagCursor += delta
	l.ClampTagCursor(count)
	return old != l.TagCursor
}

// SetFocus switches focus and reports whether it changed. Tag focus needs at
// least one tag.
func (l *List) SetFocus(focus Focus, tags int) bool {
	if focus == FocusTags && tags == 0 {
		focus = FocusList
	}
	if l.Focus == focus {
		return false
	}
	l.Focus = focus
	if focus == FocusTags {
		l.ClampTagCursor(tags)
	}
	return true
}
