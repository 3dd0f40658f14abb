package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/tmux-multiselect/internal/backend"
	"github.com/atomicstack/tmux-multiselect/internal/catalog"
	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-multiselect/internal/messages"
	"github.com/atomicstack/tmux-multiselect/internal/output"
	"github.com/atomicstack/tmux-multiselect/internal/selection"
	"github.com/atomicstack/tmux-multiselect/internal/state"
	"github.com/atomicstack/tmux-multiselect/internal/tmux"
	"github.com/atomicstack/tmux-multiselect/internal/ui"
)

// ErrCancelled is returned by Run when the user cancels and FailOnCancel is set.
var ErrCancelled = errors.New("selection cancelled")

// Config describes user-provided application options.
type Config struct {
	Source   string
	Format   string
	Selected []string

	Limit         int
	WithSearch    bool
	WithSelectAll bool
	Sortable      bool
	ShowValues    bool
	Match         string
	Debounce      time.Duration
	Reload        time.Duration

	Output    string
	Buffer    string
	Separator string

	SocketPath string
	Title      string
	Messages   messages.Messages

	Width        int
	Height       int
	ShowFooter   bool
	FailOnCancel bool
}

// session bundles everything a single picker run needs.
type session struct {
	model   *ui.Model
	sink    output.Sink
	watcher *backend.Watcher
	source  catalog.Source
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	s, err := prepare(context.Background(), cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if s.watcher != nil {
		defer s.watcher.Stop()
	}
	program := tea.NewProgram(s.model, programOptions(cfg)...)
	_, err = program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return finish(s, cfg)
}

func prepare(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) (*session, error) {
	format, err := catalog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	mode, err := selection.ParseMatchMode(cfg.Match)
	if err != nil {
		return nil, err
	}
	socket := cfg.SocketPath
	if needsTmux(cfg) {
		socket, err = tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
	}
	source, err := catalog.Open(cfg.Source, format, socket, stdin)
	if err != nil {
		return nil, err
	}
	options, err := source.Load(ctx)
	if err != nil {
		events.Catalog.Failed(source.Name(), err)
		return nil, fmt.Errorf("load catalog %s: %w", source.Name(), err)
	}
	events.Catalog.Loaded(source.Name(), len(options))

	sink, err := output.New(cfg.Output, output.Options{
		Writer:    stdout,
		Separator: cfg.Separator,
		Socket:    socket,
		Buffer:    cfg.Buffer,
	})
	if err != nil {
		return nil, err
	}

	var watcher *backend.Watcher
	if cfg.Reload > 0 && source.Reloadable() {
		watcher = backend.NewWatcher(source, cfg.Reload)
	}

	model := ui.NewModel(ui.Options{
		Title:         cfg.Title,
		Messages:      cfg.Messages,
		Catalog:       state.NewCatalogStore(options),
		Selection:     state.NewSelectionStore(cfg.Selected),
		Limit:         cfg.Limit,
		WithSearch:    cfg.WithSearch,
		WithSelectAll: cfg.WithSelectAll,
		Sortable:      cfg.Sortable,
		ShowValues:    cfg.ShowValues,
		MatchMode:     mode,
		Debounce:      cfg.Debounce,
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Watcher:       watcher,
		Sink:          sink,
	})
	return &session{model: model, sink: sink, watcher: watcher, source: source}, nil
}

// finish delivers deferred output once the terminal has been restored and
// maps the outcome onto an error.
func finish(s *session, cfg Config) error {
	outcome := s.model.Outcome()
	events.App.Exit(outcome.Status.String(), len(outcome.Values))
	if outcome.Err != nil {
		return outcome.Err
	}
	switch outcome.Status {
	case ui.StatusSubmitted:
		if deferred, ok := s.sink.(*output.Deferred); ok {
			if err := deferred.Flush(); err != nil {
				return fmt.Errorf("deliver to %s: %w", deferred.Name(), err)
			}
		}
	case ui.StatusCancelled:
		if cfg.FailOnCancel {
			return ErrCancelled
		}
	}
	return nil
}

func programOptions(cfg Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if readsStdin(cfg) {
		opts = append(opts, tea.WithInputTTY())
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	return opts
}

func readsStdin(cfg Config) bool {
	return strings.TrimSpace(cfg.Source) == "-"
}

func needsTmux(cfg Config) bool {
	if strings.HasPrefix(cfg.Source, "tmux:") {
		return true
	}
	switch strings.ToLower(cfg.Output) {
	case "tmux-buffer", "buffer":
		return true
	}
	return false
}
