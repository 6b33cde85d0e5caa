// Package ui contains the Bubble Tea program that powers the boot control
// screen. The Model type focuses on message orchestration, while dedicated
// helpers own key handling, rendering, and the reorder state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled
//     by a focused function (key presses, window size changes, executor
//     outcomes, countdown ticks).
//   - Key handling (internal/ui/keys.go) dispatches on the active screen:
//     the main view, the password prompt, the confirmation dialogs, the
//     countdown, and the help and error overlays.
//   - Privileged commands run inside tea.Cmd closures returned by
//     submitPassword; their classified outcome folds back into the state
//     machine as an outcomeMsg. While one is in flight the processing
//     flag blocks further input and keeps a notice on screen.
//   - The reboot countdown is driven by one-second tea.Tick commands. A
//     generation id on each tick discards stragglers from a countdown the
//     operator already cancelled.
//
// State ownership:
//   - Entry order, panel cursors, and focus live in internal/ui/state's
//     Reorder model, owned exclusively by the Model.
//   - The secret buffer is the bubbles textinput value; it is reset on
//     every executor call and whenever the password screen is left.
//
// Every frame is rendered from scratch by View as a pure function of the
// model, so tests can drive the machine through the Harness without a
// terminal attached.
package ui
