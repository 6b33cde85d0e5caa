package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/efi-boot-control/internal/efi"
	"github.com/atomicstack/efi-boot-control/internal/elevate"
	"github.com/atomicstack/efi-boot-control/internal/logging/events"
	"github.com/atomicstack/efi-boot-control/internal/theme"
	"github.com/atomicstack/efi-boot-control/internal/ui/command"
	uistate "github.com/atomicstack/efi-boot-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type uistateFocus = uistate.Focus

const (
	focusPriority = uistate.FocusPriority
	focusTarget   = uistate.FocusTarget
)

// Screen identifies the active state of the interactive state machine.
// Each screen carries its payload in dedicated Model fields (countdown
// seconds, error text, yes/no selection); all other fields are inert
// while their screen is not active.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAskPassword
	ScreenPasswordError
	ScreenConfirmReboot
	ScreenCountdown
	ScreenQuitConfirm
	ScreenHelp
	ScreenError
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenAskPassword:
		return "ask-password"
	case ScreenPasswordError:
		return "password-error"
	case ScreenConfirmReboot:
		return "confirm-reboot"
	case ScreenCountdown:
		return "countdown"
	case ScreenQuitConfirm:
		return "quit-confirm"
	case ScreenHelp:
		return "help"
	case ScreenError:
		return "error"
	}
	return "unknown"
}

type actionKind int

const (
	actionNone actionKind = iota
	actionSetOrder
	actionBootOnce
)

// pendingAction describes what a confirmed password submission will
// execute. It is created on confirm in the main view, survives failed
// attempts so the operator can retry, and is cleared on cancellation or
// success.
type pendingAction struct {
	kind actionKind
	ids  []string
	id   string
}

// outcomeMsg folds an executor result back into the state machine.
type outcomeMsg struct {
	action  actionKind
	outcome elevate.Outcome
}

// countdownTickMsg advances the reboot countdown. The id guards against
// ticks scheduled by a countdown that was cancelled in the meantime.
type countdownTickMsg struct {
	id int
}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the model at startup.
type Options struct {
	Tool      string
	RebootCmd string
	Countdown int
}

// Model implements the Bubble Tea model for the boot control UI.
type Model struct {
	screen  Screen
	reorder *uistate.Reorder
	current string

	password   textinput.Model
	pending    pendingAction
	processing bool

	confirmYes bool
	quitYes    bool
	errText    string

	countdown      int
	countdownID    int
	countdownTotal int
	tickInterval   time.Duration

	width  int
	height int

	tool       string
	rebootArgv []string

	bus *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state from the fetched boot snapshot.
func NewModel(snapshot efi.Snapshot, opts Options) *Model {
	password := textinput.New()
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	countdown := opts.Countdown
	if countdown < 1 {
		countdown = 5
	}
	tool := opts.Tool
	if tool == "" {
		tool = "efibootmgr"
	}
	rebootCmd := opts.RebootCmd
	if rebootCmd == "" {
		rebootCmd = "reboot"
	}

	m := &Model{
		screen:         ScreenMain,
		reorder:        uistate.NewReorder(snapshot.Entries),
		current:        snapshot.Current,
		password:       password,
		countdownTotal: countdown,
		tickInterval:   time.Second,
		tool:           tool,
		rebootArgv:     strings.Fields(rebootCmd),
		bus:            command.New(),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	// Unhandled messages (cursor blinks and the like) keep the password
	// input animated while it is on screen.
	if m.screen == ScreenAskPassword {
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(outcomeMsg{}):        m.handleOutcomeMsg,
		reflect.TypeOf(countdownTickMsg{}):  m.handleCountdownTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

// setScreen performs the transition, tracing it and handling state exit
// concerns (the secret buffer never survives leaving the password entry).
func (m *Model) setScreen(to Screen) {
	if m.screen == to {
		return
	}
	if m.screen == ScreenAskPassword && to != ScreenAskPassword {
		m.password.Reset()
	}
	events.UI.Screen(m.screen.String(), to.String())
	m.screen = to
}

// Screen exposes the active screen for tests and rendering decisions.
func (m *Model) Screen() Screen { return m.screen }

func (m *Model) focusName() string {
	if m.reorder.Focus == focusTarget {
		return "boot-once"
	}
	return "priority"
}

func (m *Model) focusedCursor() int {
	if m.reorder.Focus == focusTarget {
		return m.reorder.TargetCursor
	}
	return m.reorder.PriorityCursor
}

// Reorder exposes the reorder model for tests.
func (m *Model) Reorder() *uistate.Reorder { return m.reorder }

func (m *Model) enterAskPassword() {
	m.password.Reset()
	m.password.EchoMode = textinput.EchoPassword
	m.setScreen(ScreenAskPassword)
}

func (m *Model) enterCountdown() tea.Cmd {
	m.countdown = m.countdownTotal
	m.countdownID++
	m.setScreen(ScreenCountdown)
	events.UI.Countdown(m.countdown)
	return m.scheduleTick()
}

func (m *Model) scheduleTick() tea.Cmd {
	id := m.countdownID
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg {
		return countdownTickMsg{id: id}
	})
}

func (m *Model) handleCountdownTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(countdownTickMsg)
	if !ok {
		return nil
	}
	if m.screen != ScreenCountdown || tick.id != m.countdownID {
		return nil
	}
	if m.countdown > 1 {
		m.countdown--
		events.UI.Countdown(m.countdown)
		return m.scheduleTick()
	}
	// Final tick: the reboot is unconditional from here on. Its outcome
	// is traced but never surfaced; the program is exiting either way.
	m.bus.Detach(m.rebootArgv)
	return tea.Quit
}

func (m *Model) handleOutcomeMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(outcomeMsg)
	if !ok {
		return nil
	}
	m.processing = false
	switch result.outcome.Status {
	case elevate.StatusAuthFailure:
		// The pending action survives so the operator can retry.
		m.setScreen(ScreenPasswordError)
		return nil
	case elevate.StatusFailure:
		m.errText = result.outcome.Message
		m.setScreen(ScreenError)
		return nil
	}
	m.pending = pendingAction{}
	switch result.action {
	case actionSetOrder:
		m.confirmYes = true
		m.setScreen(ScreenConfirmReboot)
		return nil
	case actionBootOnce:
		return m.enterCountdown()
	}
	m.setScreen(ScreenMain)
	return nil
}

// submitPassword consumes the secret buffer and runs the pending action
// under elevation. The executor call happens inside the returned command;
// the processing flag keeps a notice on screen for its duration.
func (m *Model) submitPassword() tea.Cmd {
	if m.pending.kind == actionNone {
		m.setScreen(ScreenMain)
		return nil
	}
	secret := m.password.Value()
	m.password.Reset()

	var argv []string
	switch m.pending.kind {
	case actionSetOrder:
		argv = efi.SetOrderArgs(m.tool, m.pending.ids)
	case actionBootOnce:
		argv = efi.NextBootArgs(m.tool, m.pending.id)
	}
	action := m.pending.kind
	m.processing = true
	return m.bus.Execute(argv, secret, func(outcome elevate.Outcome) tea.Msg {
		return outcomeMsg{action: action, outcome: outcome}
	})
}
