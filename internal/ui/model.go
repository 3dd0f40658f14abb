package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/tmux-multiselect/internal/backend"
	"github.com/atomicstack/tmux-multiselect/internal/data/dispatcher"
	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
	"github.com/atomicstack/tmux-multiselect/internal/messages"
	"github.com/atomicstack/tmux-multiselect/internal/output"
	"github.com/atomicstack/tmux-multiselect/internal/search"
	"github.com/atomicstack/tmux-multiselect/internal/selection"
	"github.com/atomicstack/tmux-multiselect/internal/state"
	"github.com/atomicstack/tmux-multiselect/internal/theme"
	"github.com/atomicstack/tmux-multiselect/internal/ui/command"
	uistate "github.com/atomicstack/tmux-multiselect/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Status reports how the picker finished.
type Status int

const (
	StatusRunning Status = iota
	StatusSubmitted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSubmitted:
		return "submitted"
	case StatusCancelled:
		return "cancelled"
	default:
		return "running"
	}
}

// Outcome is what the picker produced once it stops.
type Outcome struct {
	Status Status
	Values []string
	Err    error
}

// Options configure a picker Model.
type Options struct {
	Title     string
	Messages  messages.Messages
	Catalog   state.CatalogStore
	Selection state.SelectionStore

	Limit         int
	WithSearch    bool
	WithSelectAll bool
	Sortable      bool
	ShowValues    bool
	ReadOnly      bool
	MatchMode     selection.MatchMode
	Debounce      time.Duration

	Width      int
	Height     int
	ShowFooter bool

	Watcher *backend.Watcher
	Sink    output.Sink
}

// Model implements the Bubble Tea model for the multi-select picker.
type Model struct {
	id   string
	opts Options
	msgs messages.Messages

	catalog    state.CatalogStore
	selection  state.SelectionStore
	controller *selection.Controller
	list       *uistate.List
	debouncer  *search.Debouncer

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	backendErr string

	filterCursor cursor.Model
	keys         keyMap
	help         help.Model

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	outcome  Outcome
	handlers map[reflect.Type]msgHandler
}

// NewModel builds a picker over the stores in opts. Missing stores are
// replaced by empty ones.
func NewModel(opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = state.NewCatalogStore(nil)
	}
	if opts.Selection == nil {
		opts.Selection = state.NewSelectionStore(nil)
	}
	if opts.Title == "" {
		opts.Title = "select"
	}
	m := &Model{
		id:         uuid.NewString(),
		opts:       opts,
		msgs:       messages.Default().Merge(opts.Messages),
		catalog:    opts.Catalog,
		selection:  opts.Selection,
		debouncer:  search.NewDebouncer(opts.Debounce),
		keys:       defaultKeyMap(),
		help:       help.New(),
		backend:    opts.Watcher,
		dispatcher: dispatcher.New(opts.Catalog),
		bus:        command.New(),
	}
	cfg := selection.Config{
		Options:         m.catalog.Options(),
		SelectedOptions: m.selection.Values(),
		SelectionLimit:  opts.Limit,
	}
	if !opts.ReadOnly {
		cfg.OnChange = m.handleSelectionChange
	}
	m.controller = selection.New(cfg)
	m.list = uistate.NewList(m.catalog.Options(), opts.MatchMode, opts.WithSelectAll && !opts.ReadOnly)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.Footer.Bold(true)
		m.help.Styles.ShortDesc = *styles.Footer
		m.help.Styles.ShortSeparator = *styles.Footer
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.Focus()
	m.filterCursor = c
	m.registerHandlers()
	m.syncViewport()
	events.UI.Init(m.id, len(m.catalog.Options()), m.controller.Count())
	return m
}

// ID returns the instance identifier used in trace output.
func (m *Model) ID() string {
	return m.id
}

// Outcome reports how the picker ended. Status is StatusRunning until the
// user submits or cancels.
func (m *Model) Outcome() Outcome {
	out := m.outcome
	out.Values = append([]string(nil), m.outcome.Values...)
	return out
}

// Controller exposes the selection controller driving the picker.
func (m *Model) Controller() *selection.Controller {
	return m.controller
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(searchSettleMsg{}):   m.handleSearchSettleMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleDeliveryResult,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleSelectionChange is the controller's OnChange: the store is the source
// of truth and the controller is re-synced from it.
func (m *Model) handleSelectionChange(values []string) {
	m.selection.SetValues(values)
	events.Selection.Change(values)
	m.controller.Sync(m.catalog.Options(), m.selection.Values())
	m.list.ClampTagCursor(m.controller.Count())
	if m.controller.Count() == 0 {
		m.list.SetFocus(uistate.FocusList, 0)
	}
}

// syncCatalog re-derives everything that depends on the catalog.
func (m *Model) syncCatalog() {
	options := m.catalog.Options()
	m.list.UpdateOptions(options)
	m.controller.Sync(options, m.selection.Values())
	m.list.ClampTagCursor(m.controller.Count())
	if m.controller.Count() == 0 {
		m.list.SetFocus(uistate.FocusList, 0)
	}
	m.syncViewport()
}

func (m *Model) finished() bool {
	return m.outcome.Status != StatusRunning
}

// teardown stops pending work once the picker is about to exit.
func (m *Model) teardown(reason string) {
	m.debouncer.Stop()
	if m.backend != nil {
		m.backend.Stop()
	}
	events.UI.Teardown(m.id, reason)
}
