package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/logging"
	"github.com/atomicstack/tmux-multiselect/internal/output"
	"github.com/atomicstack/tmux-multiselect/internal/ui/command"
)

func commandRequest(sink output.Sink, values []string) command.Request {
	return command.Request{ID: "submit", Sink: sink, Values: values}
}

// handleDeliveryResult records the delivery outcome and ends the program.
func (m *Model) handleDeliveryResult(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if res.Err != nil {
		logging.Error(res.Err)
		m.outcome.Err = res.Err
		m.errMsg = res.Err.Error()
	}
	return tea.Quit
}
