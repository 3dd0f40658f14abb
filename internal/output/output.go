// Package output delivers the submitted selection somewhere useful: a
// writer, a tmux paste buffer or the system clipboard.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/tmux-multiselect/internal/tmux"
)

var ErrUnknownSink = errors.New("output: unknown sink")

// Sink receives the final ordered list of selected values.
type Sink interface {
	Name() string
	Deliver(values []string) error
}

// Options configure the sinks built by New.
type Options struct {
	Writer    io.Writer
	Separator string
	Socket    string
	Buffer    string
}

// Join renders values with sep. An empty selection renders as "".
func Join(values []string, sep string) string {
	return strings.Join(values, sep)
}

// WriterSink writes the joined values followed by a newline.
type WriterSink struct {
	W         io.Writer
	Separator string
}

func (s WriterSink) Name() string { return "stdout" }

func (s WriterSink) Deliver(values []string) error {
	if s.W == nil {
		return errors.New("output: nil writer")
	}
	if len(values) == 0 {
		return nil
	}
	if _, err := io.WriteString(s.W, Join(values, s.Separator)+"\n"); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

// Deferred holds the delivered values until Flush so the terminal UI is not
// drawn over while it is still on screen.
type Deferred struct {
	Target Sink

	mu      sync.Mutex
	values  []string
	pending bool
}

func (d *Deferred) Name() string { return d.Target.Name() }

func (d *Deferred) Deliver(values []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = append([]string(nil), values...)
	d.pending = true
	return nil
}

// Flush hands any captured values to the target sink.
func (d *Deferred) Flush() error {
	d.mu.Lock()
	values, pending := d.values, d.pending
	d.values, d.pending = nil, false
	d.mu.Unlock()
	if !pending {
		return nil
	}
	return d.Target.Deliver(values)
}

// TmuxBufferSink loads the joined values into a tmux paste buffer.
type TmuxBufferSink struct {
	Socket    string
	Buffer    string
	Separator string
}

var setBuffer = tmux.SetBuffer

func (s TmuxBufferSink) Name() string { return "tmux-buffer" }

func (s TmuxBufferSink) Deliver(values []string) error {
	return setBuffer(s.Socket, s.Buffer, Join(values, s.Separator))
}

// ClipboardSink copies the joined values to the system clipboard.
type ClipboardSink struct {
	Separator string
}

var writeClipboard = clipboard.WriteAll

func (s ClipboardSink) Name() string { return "clipboard" }

func (s ClipboardSink) Deliver(values []string) error {
	if clipboard.Unsupported {
		return errors.New("output: clipboard unsupported on this system")
	}
	if err := writeClipboard(Join(values, s.Separator)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// New builds the sink named by kind. The stdout sink comes back wrapped in
// a Deferred.
func New(kind string, opts Options) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "stdout":
		return &Deferred{Target: WriterSink{W: opts.Writer, Separator: opts.Separator}}, nil
	case "tmux-buffer", "buffer":
		return TmuxBufferSink{Socket: opts.Socket, Buffer: opts.Buffer, Separator: opts.Separator}, nil
	case "clipboard":
		return ClipboardSink{Separator: opts.Separator}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, kind)
	}
}
