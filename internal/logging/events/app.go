package events

import "github.com/atomicstack/efi-boot-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Inventory(entries int, order []string, current string) {
	logging.Trace("app.inventory", map[string]interface{}{
		"entries": entries,
		"order":   order,
		"current": current,
	})
}
