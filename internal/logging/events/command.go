package events

import "github.com/atomicstack/efi-boot-control/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

// Queue records a privileged invocation about to run. Only the argument
// vector is logged; the credential never reaches the trace log.
func (CommandTracer) Queue(argv []string) {
	logging.Trace("command.queue", map[string]interface{}{"argv": argv})
}

func (CommandTracer) Result(argv []string, status int, message string) {
	logging.Trace("command.result", map[string]interface{}{
		"argv":    argv,
		"status":  status,
		"message": message,
	})
}
