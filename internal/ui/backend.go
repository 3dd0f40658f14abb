package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-multiselect/internal/backend"
	"github.com/atomicstack/tmux-multiselect/internal/logging"
	"github.com/atomicstack/tmux-multiselect/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil && !m.finished() {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		logging.Error(res.Err)
		events.Catalog.Failed(evt.Source, res.Err)
		m.backendErr = res.Err.Error()
		return
	}
	m.backendErr = ""
	if !res.CatalogUpdated {
		return
	}
	events.Catalog.Loaded(evt.Source, len(evt.Options))
	m.syncCatalog()
}
