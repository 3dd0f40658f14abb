package events

import "github.com/atomicstack/tmux-multiselect/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Init(instance string, options, selected int) {
	logging.Trace("ui.init", map[string]interface{}{"instance": instance, "options": options, "selected": selected})
}

func (UITracer) Cursor(instance string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"instance": instance, "cursor": cursor})
}

func (UITracer) Focus(instance, focus string) {
	logging.Trace("ui.focus", map[string]interface{}{"instance": instance, "focus": focus})
}

func (UITracer) Teardown(instance, reason string) {
	logging.Trace("ui.teardown", map[string]interface{}{"instance": instance, "reason": reason})
}

func (FilterTracer) Cleared(instance string) {
	logging.Trace("filter.clear", map[string]interface{}{"instance": instance})
}

func (FilterTracer) WordBackspace(instance, draft string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"instance": instance, "draft": draft})
}

func (FilterTracer) Cursor(instance string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"instance": instance, "cursor": pos})
}

func (FilterTracer) CursorWord(instance string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"instance": instance, "cursor": pos})
}

func (FilterTracer) Append(instance, draft string) {
	logging.Trace("filter.append", map[string]interface{}{"instance": instance, "draft": draft})
}

func (FilterTracer) Backspace(instance, draft string) {
	logging.Trace("filter.backspace", map[string]interface{}{"instance": instance, "draft": draft})
}

func (FilterTracer) Scheduled(instance string, token uint64, draft string) {
	logging.Trace("filter.scheduled", map[string]interface{}{"instance": instance, "token": token, "draft": draft})
}

func (FilterTracer) Settled(instance, applied string, matches int) {
	logging.Trace("filter.settled", map[string]interface{}{"instance": instance, "applied": applied, "matches": matches})
}

func (FilterTracer) Dropped(instance string, token uint64) {
	logging.Trace("filter.dropped", map[string]interface{}{"instance": instance, "token": token})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
