package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-multiselect/internal/output"
)

// Request describes one delivery of the selected values to a sink.
type Request struct {
	ID     string
	Sink   output.Sink
	Values []string
}

// Result is the message produced once a request has run.
type Result struct {
	ID     string
	Sink   string
	Values []string
	Err    error
}

// Bus coordinates the execution of sink deliveries.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a delivery into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	label := sinkName(req.Sink)
	events.Command.Queue(req.ID, label)
	values := append([]string(nil), req.Values...)
	return func() tea.Msg {
		res := Result{ID: req.ID, Sink: label, Values: values}
		if req.Sink == nil {
			events.Command.Skip(req.ID, label)
			return res
		}
		if err := req.Sink.Deliver(values); err != nil {
			res.Err = fmt.Errorf("deliver to %s: %w", label, err)
			events.Output.Failed(label, err)
		} else {
			events.Output.Delivered(label, len(values))
		}
		events.Command.Result(req.ID, label, fmt.Sprintf("%T", res))
		return res
	}
}

func sinkName(s output.Sink) string {
	if s == nil {
		return "none"
	}
	return s.Name()
}
