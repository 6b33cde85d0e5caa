package command

import (
	"github.com/atomicstack/efi-boot-control/internal/elevate"
	"github.com/atomicstack/efi-boot-control/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs a privileged argument vector with the operator's secret.
type Executor func(argv []string, secret string) elevate.Outcome

// Detacher fires a privileged argument vector without supplying a secret.
type Detacher func(argv []string) elevate.Outcome

// Bus coordinates the execution of privileged commands.
type Bus struct {
	run    Executor
	detach Detacher
}

// New initialises a bus backed by the real elevation layer.
func New() *Bus {
	return &Bus{run: elevate.Run, detach: elevate.RunDetached}
}

// NewWith allows tests to substitute the executors.
func NewWith(run Executor, detach Detacher) *Bus {
	return &Bus{run: run, detach: detach}
}

// Execute wraps a privileged invocation into a Bubble Tea command while
// emitting trace logs. The secret is captured by the closure and stays out
// of the trace; done folds the outcome back into the caller's message type.
func (b *Bus) Execute(argv []string, secret string, done func(elevate.Outcome) tea.Msg) tea.Cmd {
	events.Command.Queue(argv)
	run := b.run
	return func() tea.Msg {
		outcome := run(argv, secret)
		events.Command.Result(argv, int(outcome.Status), outcome.Message)
		return done(outcome)
	}
}

// Detach runs a privileged invocation that the program will not wait on
// beyond process exit. The outcome is traced and returned for callers that
// still want it.
func (b *Bus) Detach(argv []string) elevate.Outcome {
	events.Command.Queue(argv)
	outcome := b.detach(argv)
	events.Command.Result(argv, int(outcome.Status), outcome.Message)
	return outcome
}
