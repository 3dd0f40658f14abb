package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/format/table"
	"github.com/atomicstack/tmux-multiselect/internal/search"
	uistate "github.com/atomicstack/tmux-multiselect/internal/ui/state"
)

const (
	markChecked   = "[✓]"
	markUnchecked = "[ ]"
	markPartial   = "[-]"
	tagRemove     = "×"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	// raw lines are already styled and only get ANSI-aware truncation.
	raw bool
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.finished() {
		return ""
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	if tags := m.tagLine(); tags != "" {
		lines = append(lines, styledLine{text: tags, raw: true})
	}
	if m.opts.WithSearch {
		lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})
	}
	lines = append(lines, m.rowLines()...)
	if notice := m.limitNotice(); notice != "" {
		lines = append(lines, styledLine{text: notice, style: styles.Notice})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.opts.ShowFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.helpView(), raw: true})
	}
	lines = limitHeight(lines, m.height-1, m.width)
	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.backendErr != "":
		status = styledLine{text: fmt.Sprintf("reload failed: %s", m.backendErr), style: styles.Error}
	}
	lines = append(lines, status)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) headerLine() styledLine {
	count := m.msgs.Selected(m.controller.Count())
	text := m.opts.Title
	if styles.Header != nil {
		text = styles.Header.Render(text)
	}
	if styles.Count != nil {
		count = styles.Count.Render(count)
	}
	return styledLine{text: text + "  " + count, raw: true}
}

func (m *Model) tagLine() string {
	selected := m.controller.Selected()
	if len(selected) == 0 {
		return ""
	}
	focused := m.list.Focus == uistate.FocusTags
	parts := make([]string, 0, len(selected))
	for i, opt := range selected {
		style := styles.Tag
		if focused && i == m.list.TagCursor {
			style = styles.TagFocused
		}
		remove := tagRemove
		if styles.TagRemove != nil && !(focused && i == m.list.TagCursor) {
			remove = styles.TagRemove.Render(remove)
		}
		label := opt.Label + " " + remove
		if style != nil {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m *Model) rowLines() []styledLine {
	rows := m.list.Rows()
	if len(rows) == 0 {
		return []styledLine{m.emptyLine()}
	}
	m.syncViewport()
	start := 0
	visible := rows
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(rows) > maxItems {
		start = m.list.ViewportOffset
		if start+maxItems > len(rows) {
			start = len(rows) - maxItems
			if start < 0 {
				start = 0
			}
			m.list.ViewportOffset = start
		}
		visible = rows[start : start+maxItems]
	}
	labels := m.rowLabels(visible)
	lines := make([]styledLine, 0, len(visible))
	for i, row := range visible {
		lines = append(lines, m.buildRowLine(row, labels[i], start+i))
	}
	return lines
}

// rowLabels renders the text column of each row, aligning values in a
// second column when they are shown.
func (m *Model) rowLabels(rows []uistate.Row) []string {
	labels := make([]string, len(rows))
	if !m.opts.ShowValues {
		for i, row := range rows {
			labels[i] = m.rowLabel(row)
		}
		return labels
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		value := ""
		if row.Kind == uistate.RowOption && row.Option.Value != row.Option.Label {
			value = row.Option.Value
		}
		cells[i] = []string{m.rowLabel(row), value}
	}
	return table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (m *Model) rowLabel(row uistate.Row) string {
	if row.Kind == uistate.RowSelectAll {
		return m.msgs.SelectAll
	}
	return row.Option.Label
}

func (m *Model) buildRowLine(row uistate.Row, label string, idx int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark, enabled := m.rowMark(row)
	if row.Kind == uistate.RowSelectAll && styles.SelectAll != nil {
		lineStyle = styles.SelectAll
	}
	if !enabled {
		lineStyle = styles.DisabledItem
	}
	if idx == m.list.Cursor && m.list.Focus == uistate.FocusList {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := indicator + " " + mark + " " + label
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// rowMark returns the check mark of a row and whether it can be toggled.
func (m *Model) rowMark(row uistate.Row) (string, bool) {
	c := m.controller
	if row.Kind == uistate.RowSelectAll {
		switch {
		case c.AllSelected():
			return markChecked, c.SelectAllEnabled()
		case c.Count() > 0:
			return markPartial, c.SelectAllEnabled()
		default:
			return markUnchecked, c.SelectAllEnabled()
		}
	}
	if c.IsSelected(row.Option.Value) {
		return markChecked, c.CanToggle(row.Option.Value)
	}
	return markUnchecked, c.CanToggle(row.Option.Value)
}

func (m *Model) emptyLine() styledLine {
	if m.list.Applied == "" {
		return styledLine{text: "(no options)", style: styles.Info}
	}
	msg := m.msgs.NoResults
	labels := make([]string, len(m.list.Full))
	for i, opt := range m.list.Full {
		labels[i] = opt.Label
	}
	if suggestion, ok := search.Suggest(labels, m.list.Applied); ok {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return styledLine{text: msg, style: styles.Info}
}

func (m *Model) limitNotice() string {
	limit := m.controller.Limit()
	if limit <= 0 {
		return ""
	}
	notice := fmt.Sprintf("%d/%d selected", m.controller.Count(), limit)
	if m.controller.LimitReached() {
		notice += " (limit reached)"
	}
	return notice
}

func (m *Model) helpView() string {
	if m.list.Focus == uistate.FocusTags {
		return m.help.ShortHelpView(tagHelp{keys: m.keys, sortable: m.opts.Sortable}.ShortHelp())
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // header + status line
	if m.controller.Count() > 0 {
		used++
	}
	if m.opts.WithSearch {
		used++
	}
	if m.controller.Limit() > 0 {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.opts.ShowFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width display columns, keeping any ANSI
// sequences intact.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
