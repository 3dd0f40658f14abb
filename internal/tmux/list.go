package tmux

import (
	"fmt"
	"strings"
)

const (
	defaultSessionFormat = "#S: #{session_windows} windows#{?session_attached, (attached),}"
	defaultWindowFormat  = "#S:#I #W#{?window_active, (active),}"
)

// ListSessions returns one entry per session. The value is the session name
// and the label follows labelFormat, or a window-count summary when blank.
func ListSessions(socketPath, labelFormat string) ([]Entry, error) {
	labelExpr := strings.TrimSpace(labelFormat)
	if labelExpr == "" {
		labelExpr = defaultSessionFormat
	}
	out, err := output(socketPath, "list-sessions", "-F", fmt.Sprintf("#{session_name}\t%s", labelExpr))
	if err != nil {
		return nil, err
	}
	return parseEntries(out), nil
}

// ListWindows returns one entry per window across all sessions, keyed by
// "session:index".
func ListWindows(socketPath, labelFormat string) ([]Entry, error) {
	labelExpr := strings.TrimSpace(labelFormat)
	if labelExpr == "" {
		labelExpr = defaultWindowFormat
	}
	out, err := output(socketPath, "list-windows", "-a", "-F", fmt.Sprintf("#{session_name}:#{window_index}\t%s", labelExpr))
	if err != nil {
		return nil, err
	}
	return parseEntries(out), nil
}
