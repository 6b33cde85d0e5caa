package ui

import (
	"github.com/atomicstack/efi-boot-control/internal/logging/events"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.processing {
		// The executor is running; input waits until its outcome lands.
		return nil
	}
	switch m.screen {
	case ScreenMain:
		return m.handleMainKey(keyMsg)
	case ScreenAskPassword:
		return m.handlePasswordKey(keyMsg)
	case ScreenPasswordError:
		m.enterAskPassword()
		return nil
	case ScreenConfirmReboot:
		return m.handleConfirmRebootKey(keyMsg)
	case ScreenCountdown:
		if keyMsg.String() == "esc" {
			m.setScreen(ScreenMain)
		}
		return nil
	case ScreenQuitConfirm:
		return m.handleQuitConfirmKey(keyMsg)
	case ScreenHelp:
		m.setScreen(ScreenMain)
		return nil
	case ScreenError:
		m.errText = ""
		m.enterAskPassword()
		return nil
	}
	return nil
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.reorder.Changed() {
			m.quitYes = false
			m.setScreen(ScreenQuitConfirm)
			return nil
		}
		events.UI.Quit(true)
		return tea.Quit
	case "tab":
		m.reorder.ToggleFocus()
		events.UI.Focus(m.focusName())
	case "up", "k":
		if m.reorder.MoveCursor(-1) {
			events.UI.Cursor(m.focusName(), m.focusedCursor())
		}
	case "down", "j":
		if m.reorder.MoveCursor(1) {
			events.UI.Cursor(m.focusName(), m.focusedCursor())
		}
	case "u":
		if m.reorder.Focus == focusPriority && m.reorder.MoveEntryUp() {
			events.UI.Reorder(m.reorder.IDs(), m.reorder.PriorityCursor)
		}
	case "d":
		if m.reorder.Focus == focusPriority && m.reorder.MoveEntryDown() {
			events.UI.Reorder(m.reorder.IDs(), m.reorder.PriorityCursor)
		}
	case "enter":
		return m.confirmMainSelection()
	case "h", "?":
		m.setScreen(ScreenHelp)
	}
	return nil
}

func (m *Model) confirmMainSelection() tea.Cmd {
	if m.reorder.Len() == 0 {
		return nil
	}
	if m.reorder.Focus == focusPriority {
		m.pending = pendingAction{kind: actionSetOrder, ids: m.reorder.IDs()}
	} else {
		target, ok := m.reorder.Target()
		if !ok {
			return nil
		}
		m.pending = pendingAction{kind: actionBootOnce, id: target.ID}
	}
	m.enterAskPassword()
	return nil
}

func (m *Model) handlePasswordKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.pending = pendingAction{}
		m.setScreen(ScreenMain)
		return nil
	case "tab":
		// Display-only toggle; the buffer itself is untouched.
		if m.password.EchoMode == textinput.EchoPassword {
			m.password.EchoMode = textinput.EchoNormal
		} else {
			m.password.EchoMode = textinput.EchoPassword
		}
		return nil
	case "enter":
		return m.submitPassword()
	}
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return cmd
}

func (m *Model) handleConfirmRebootKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.setScreen(ScreenMain)
	case "left", "right", "tab":
		m.confirmYes = !m.confirmYes
	case "enter":
		if m.confirmYes {
			return m.enterCountdown()
		}
		m.setScreen(ScreenMain)
	}
	return nil
}

func (m *Model) handleQuitConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.setScreen(ScreenMain)
	case "left", "right", "tab":
		m.quitYes = !m.quitYes
	case "enter":
		if m.quitYes {
			events.UI.Quit(false)
			return tea.Quit
		}
		m.setScreen(ScreenMain)
	}
	return nil
}
