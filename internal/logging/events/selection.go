package events

import (
	"github.com/atomicstack/tmux-multiselect/internal/logging"
)

type SelectionTracer struct{}

type CatalogTracer struct{}

var (
	Selection = SelectionTracer{}
	Catalog   = CatalogTracer{}
)

func (SelectionTracer) Toggle(value string, selected bool) {
	logging.Trace("selection.toggle", map[string]interface{}{"value": value, "selected": selected})
}

func (SelectionTracer) Rejected(op, value string) {
	logging.Trace("selection.rejected", map[string]interface{}{"op": op, "value": value})
}

func (SelectionTracer) SelectAll(count int) {
	logging.Trace("selection.select-all", map[string]interface{}{"count": count})
}

func (SelectionTracer) ClearAll() {
	logging.Trace("selection.clear-all", nil)
}

func (SelectionTracer) Remove(index int, value string) {
	logging.Trace("selection.remove", map[string]interface{}{"index": index, "value": value})
}

func (SelectionTracer) Move(from, to int) {
	logging.Trace("selection.move", map[string]interface{}{"from": from, "to": to})
}

func (SelectionTracer) Change(values []string) {
	logging.Trace("selection.change", map[string]interface{}{"values": values, "count": len(values)})
}

func (CatalogTracer) Loaded(source string, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"source": source, "count": count})
}

func (CatalogTracer) Failed(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.failed", map[string]interface{}{"source": source, "error": err.Error()})
}
