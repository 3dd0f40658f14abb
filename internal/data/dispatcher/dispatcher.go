package dispatcher

import (
	"github.com/atomicstack/tmux-multiselect/internal/backend"
	"github.com/atomicstack/tmux-multiselect/internal/state"
)

// Result reports what a watcher event changed.
type Result struct {
	CatalogUpdated bool
	Err            error
}

// Dispatcher applies watcher events to the catalog store.
type Dispatcher struct {
	catalog state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalog: c}
}

// Handle stores a successfully loaded catalog. Failed polls keep the
// previous catalog and surface the error.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		return Result{Err: evt.Err}
	}
	return Result{CatalogUpdated: d.catalog.SetOptions(evt.Options)}
}
