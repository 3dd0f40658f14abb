// Package state holds the view state of the picker list: the rows produced
// by the applied search, the cursor and viewport, the draft search text and
// the tag cursor.
package state

import "github.com/atomicstack/tmux-multiselect/internal/selection"

// Focus names the region that receives navigation keys.
type Focus int

const (
	FocusList Focus = iota
	FocusTags
)

func (f Focus) String() string {
	if f == FocusTags {
		return "tags"
	}
	return "list"
}

// RowKind distinguishes the synthetic select-all row from option rows.
type RowKind int

const (
	RowOption RowKind = iota
	RowSelectAll
)

// Row is one line of the option list.
type Row struct {
	Kind   RowKind
	Option selection.Option
}

// List tracks everything about the option list that is not selection state.
type List struct {
	Full  []selection.Option
	Items []selection.Option

	// Draft is the search text as typed; Applied is the text the list is
	// currently filtered by.
	Draft       string
	DraftCursor int
	Applied     string
	Mode        selection.MatchMode

	SelectAll bool

	Cursor         int
	LastCursor     int
	ViewportOffset int

	TagCursor int
	Focus     Focus
}

// NewList builds a list over options. selectAll controls whether the
// select-all row is offered while no search is applied.
func NewList(options []selection.Option, mode selection.MatchMode, selectAll bool) *List {
	l := &List{
		Mode:       mode,
		SelectAll:  selectAll,
		LastCursor: -1,
	}
	l.UpdateOptions(options)
	return l
}

// UpdateOptions swaps the catalog while keeping the applied search, cursor
// and viewport when they still fit.
func (l *List) UpdateOptions(options []selection.Option) {
	prevOffset := l.ViewportOffset
	l.Full = options
	l.applyFilter()
	if l.RowCount() == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > l.RowCount()-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// ShowsSelectAll reports whether the select-all row is part of Rows.
func (l *List) ShowsSelectAll() bool {
	return l.SelectAll && l.Applied == "" && len(l.Full) > 0
}

// RowCount returns the number of visible rows including select-all.
func (l *List) RowCount() int {
	n := len(l.Items)
	if l.ShowsSelectAll() {
		n++
	}
	return n
}

// Rows returns the visible rows in display order.
func (l *List) Rows() []Row {
	rows := make([]Row, 0, l.RowCount())
	if l.ShowsSelectAll() {
		rows = append(rows, Row{Kind: RowSelectAll})
	}
	for _, opt := range l.Items {
		rows = append(rows, Row{Kind: RowOption, Option: opt})
	}
	return rows
}

// CurrentRow returns the row under the cursor.
func (l *List) CurrentRow() (Row, bool) {
	idx := l.Cursor
	if idx < 0 || idx >= l.RowCount() {
		return Row{}, false
	}
	if l.ShowsSelectAll() {
		if idx == 0 {
			return Row{Kind: RowSelectAll}, true
		}
		idx--
	}
	return Row{Kind: RowOption, Option: l.Items[idx]}, true
}

// Apply filters the list by text. Starting a search remembers the cursor so
// clearing the search can restore it.
func (l *List) Apply(text string) bool {
	if text == l.Applied {
		return false
	}
	prev := l.Applied
	l.Applied = text
	if text != "" && prev == "" {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	switch {
	case text != "":
		l.Cursor = 0
		if idx := BestMatchIndex(l.Items, text); idx >= 0 {
			l.Cursor = idx
		}
	case prev != "":
		if l.LastCursor >= 0 && l.LastCursor < l.RowCount() {
			l.Cursor = l.LastCursor
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	}
	return true
}

// ApplyDraft applies the draft text and reports whether the list changed.
func (l *List) ApplyDraft() bool {
	return l.Apply(l.Draft)
}

// DraftPending reports whether the typed text differs from the applied text.
func (l *List) DraftPending() bool {
	return l.Draft != l.Applied
}

func (l *List) applyFilter() {
	l.Items = selection.FilterMode(l.Full, l.Applied, l.Mode)
	count := l.RowCount()
	if count == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= count {
		l.Cursor = count - 1
	}
	if l.ViewportOffset > count-1 {
		l.ViewportOffset = 0
	}
}
