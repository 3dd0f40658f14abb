package events

import "github.com/atomicstack/tmux-multiselect/internal/logging"

type OutputTracer struct{}

var Output = OutputTracer{}

func (OutputTracer) Delivered(sink string, count int) {
	logging.Trace("output.delivered", map[string]interface{}{"sink": sink, "count": count})
}

func (OutputTracer) Failed(sink string, err error) {
	if err == nil {
		return
	}
	logging.Trace("output.failed", map[string]interface{}{"sink": sink, "error": err.Error()})
}
