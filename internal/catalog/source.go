package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atomicstack/tmux-multiselect/internal/selection"
	"github.com/atomicstack/tmux-multiselect/internal/tmux"
)

// Source loads a catalog. Reloadable sources may return fresh data on every
// Load; the others always return what they read first.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]selection.Option, error)
	Reloadable() bool
}

// FileSource re-reads a file on every Load.
type FileSource struct {
	Path   string
	Format Format
}

func (s FileSource) Name() string     { return s.Path }
func (s FileSource) Reloadable() bool { return true }

func (s FileSource) Load(ctx context.Context) ([]selection.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	format := s.Format
	if format == FormatAuto || format == "" {
		format = DetectFormat(s.Path)
	}
	return Parse(f, format)
}

// ReaderSource reads its reader once and serves the cached result after.
type ReaderSource struct {
	Label  string
	Reader io.Reader
	Format Format

	once    sync.Once
	options []selection.Option
	err     error
}

func (s *ReaderSource) Name() string     { return s.Label }
func (s *ReaderSource) Reloadable() bool { return false }

func (s *ReaderSource) Load(ctx context.Context) ([]selection.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.once.Do(func() {
		if s.Reader == nil {
			s.err = ErrNoSource
			return
		}
		s.options, s.err = Parse(s.Reader, s.Format)
	})
	return selection.CloneOptions(s.options), s.err
}

// TmuxSource lists tmux sessions or windows.
type TmuxSource struct {
	Kind        string
	Socket      string
	LabelFormat string
}

var tmuxListers = map[string]func(socket, format string) ([]tmux.Entry, error){
	"sessions": tmux.ListSessions,
	"windows":  tmux.ListWindows,
}

func (s TmuxSource) Name() string     { return "tmux:" + s.Kind }
func (s TmuxSource) Reloadable() bool { return true }

func (s TmuxSource) Load(ctx context.Context) ([]selection.Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	list, ok := tmuxListers[s.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown tmux listing %q", s.Kind)
	}
	entries, err := list(s.Socket, s.LabelFormat)
	if err != nil {
		return nil, err
	}
	options := make([]selection.Option, 0, len(entries))
	for _, e := range entries {
		options = append(options, selection.Option{Label: e.Label, Value: e.Value})
	}
	return options, nil
}

// Open builds the source named by location: "-" for stdin, "tmux:sessions" or
// "tmux:windows" for tmux listings, anything else as a file path.
func Open(location string, format Format, socket string, stdin io.Reader) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, ErrNoSource
	case location == "-":
		return &ReaderSource{Label: "stdin", Reader: stdin, Format: format}, nil
	case strings.HasPrefix(location, "tmux:"):
		kind := strings.TrimPrefix(location, "tmux:")
		if _, ok := tmuxListers[kind]; !ok {
			return nil, fmt.Errorf("unknown tmux listing %q", kind)
		}
		return TmuxSource{Kind: kind, Socket: socket}, nil
	default:
		return FileSource{Path: location, Format: format}, nil
	}
}
