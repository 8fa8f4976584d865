package events

import "github.com/atomicstack/dirnav/internal/logging"

type AppTracer struct{}

type ConfigTracer struct{}

var (
	App    = AppTracer{}
	Config = ConfigTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (ConfigTracer) Warning(message string) {
	logging.Trace("config.warning", map[string]interface{}{"message": message})
}
