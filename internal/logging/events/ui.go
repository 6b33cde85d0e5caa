package events

import "github.com/atomicstack/efi-boot-control/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Screen(from, to string) {
	logging.Trace("ui.screen", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(panel string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"panel": panel, "cursor": cursor})
}

func (UITracer) Focus(panel string) {
	logging.Trace("ui.focus", map[string]interface{}{"panel": panel})
}

func (UITracer) Reorder(ids []string, cursor int) {
	logging.Trace("ui.reorder", map[string]interface{}{"order": ids, "cursor": cursor})
}

func (UITracer) Countdown(seconds int) {
	logging.Trace("ui.countdown", map[string]interface{}{"seconds": seconds})
}

func (UITracer) Quit(saved bool) {
	logging.Trace("ui.quit", map[string]interface{}{"saved": saved})
}
