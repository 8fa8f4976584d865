package events

import "github.com/atomicstack/dirnav/internal/logging"

type HelpTracer struct{}

type ActionTracer struct{}

var (
	Help   = HelpTracer{}
	Action = ActionTracer{}
)

func (HelpTracer) Render(width, lines int) {
	logging.Trace("help.render", map[string]interface{}{"width": width, "lines": lines})
}

func (HelpTracer) Search(query string, matches int) {
	logging.Trace("help.search", map[string]interface{}{"query": query, "matches": matches})
}

func (HelpTracer) Mode(kind, value string) {
	logging.Trace("help.mode", map[string]interface{}{"kind": kind, "value": value})
}

func (ActionTracer) Dispatch(name, key, context string) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": name, "key": key, "context": context})
}

func (ActionTracer) Unbound(key string, searching bool) {
	logging.Trace("action.unbound", map[string]interface{}{"key": key, "searching": searching})
}
