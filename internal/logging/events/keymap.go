package events

import "github.com/atomicstack/dirnav/internal/logging"

type KeymapTracer struct{}

var Keymap = KeymapTracer{}

func (KeymapTracer) Reload(path string, bindings int, warnings []string) {
	logging.Trace("keymap.reload", map[string]interface{}{
		"path":     path,
		"bindings": bindings,
		"warnings": warnings,
	})
}

func (KeymapTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("keymap.error", map[string]interface{}{"error": err.Error()})
}
