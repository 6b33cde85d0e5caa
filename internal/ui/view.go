package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	panelMinWidth   = 30
	panelMaxWidth   = 72
	fallbackWidth   = 80
	fallbackHeight  = 24
	entryNameMargin = 8 // row prefix: marker, number, spacing
)

// View implements tea.Model. Every frame is a pure function of the model;
// modal screens replace the main layout with a centered overlay.
func (m *Model) View() string {
	switch m.screen {
	case ScreenAskPassword:
		return m.overlay(m.viewPassword())
	case ScreenPasswordError:
		return m.overlay(m.viewPasswordError())
	case ScreenConfirmReboot:
		return m.overlay(m.viewConfirm("Boot order updated", "Reboot now?", m.confirmYes))
	case ScreenCountdown:
		return m.overlay(m.viewCountdown())
	case ScreenQuitConfirm:
		return m.overlay(m.viewConfirm("Unsaved boot order", "Discard changes and quit?", m.quitYes))
	case ScreenHelp:
		return m.overlay(m.viewHelp())
	case ScreenError:
		return m.overlay(m.viewError())
	}
	return m.viewMain()
}

func (m *Model) frameWidth() int {
	if m.width > 0 {
		return m.width
	}
	return fallbackWidth
}

func (m *Model) frameHeight() int {
	if m.height > 0 {
		return m.height
	}
	return fallbackHeight
}

func (m *Model) panelWidth() int {
	w := m.frameWidth() - 4
	if w > panelMaxWidth {
		w = panelMaxWidth
	}
	if w < panelMinWidth {
		w = panelMinWidth
	}
	return w
}

func (m *Model) overlay(content string) string {
	modal := styles.Modal.Render(content)
	return lipgloss.Place(m.frameWidth(), m.frameHeight(), lipgloss.Center, lipgloss.Center, modal)
}

func (m *Model) viewMain() string {
	width := m.panelWidth()
	sections := []string{
		styles.Title.Render("EFI Boot Control"),
		m.viewPanel("Boot Priority (default order)", focusPriority, width),
		m.viewPanel("Boot Once (next boot only)", focusTarget, width),
		styles.Footer.Render("tab panel  ↑/↓ move  u/d reorder  enter apply  h help  q quit"),
	}
	frame := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(m.frameWidth(), m.frameHeight(), lipgloss.Center, lipgloss.Center, frame)
}

func (m *Model) viewPanel(title string, panel uistateFocus, width int) string {
	focused := m.reorder.Focus == panel
	cursor := m.reorder.PriorityCursor
	if panel == focusTarget {
		cursor = m.reorder.TargetCursor
	}
	nameWidth := width - entryNameMargin
	if nameWidth < 8 {
		nameWidth = 8
	}

	rows := make([]string, 0, m.reorder.Len()+1)
	rows = append(rows, styles.PanelTitle.Render(title))
	if m.reorder.Len() == 0 {
		rows = append(rows, styles.Info.Render("(no boot entries)"))
	}
	for i, entry := range m.reorder.Entries() {
		name := truncate.StringWithTail(entry.Name, uint(nameWidth), "…")
		marker := " "
		if entry.ID == m.current {
			marker = styles.CurrentMarker.Render("●")
		}
		var row string
		if panel == focusPriority {
			row = fmt.Sprintf("%s %2d. %s", marker, i+1, name)
		} else {
			row = fmt.Sprintf("%s %s", marker, name)
		}
		if focused && i == cursor {
			rows = append(rows, styles.SelectedItem.Render(row))
		} else {
			rows = append(rows, styles.Item.Render(row))
		}
	}

	body := strings.Join(rows, "\n")
	if focused {
		return styles.PanelFocused.Width(width).Render(body)
	}
	return styles.Panel.Width(width).Render(body)
}

func (m *Model) viewPassword() string {
	prompt := "Enter sudo password"
	switch m.pending.kind {
	case actionSetOrder:
		prompt = "Enter sudo password to apply the new boot order"
	case actionBootOnce:
		prompt = "Enter sudo password to set the one-shot boot target"
	}
	lines := []string{
		styles.ModalTitle.Render("Authentication"),
		"",
		styles.Info.Render(prompt),
		m.password.View(),
		"",
	}
	if m.processing {
		lines = append(lines, styles.Processing.Render("Authenticating…"))
	} else {
		lines = append(lines, styles.Footer.Render("enter confirm  esc cancel  tab show/hide"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewPasswordError() string {
	return strings.Join([]string{
		styles.Error.Render("Incorrect password"),
		"",
		styles.Footer.Render("press any key to retry"),
	}, "\n")
}

func (m *Model) viewError() string {
	return strings.Join([]string{
		styles.Error.Render("Command failed"),
		"",
		styles.Info.Render(m.errText),
		"",
		styles.Footer.Render("press any key to retry"),
	}, "\n")
}

func (m *Model) viewConfirm(title, question string, yes bool) string {
	yesButton := styles.ButtonInactive.Render("[ Yes ]")
	noButton := styles.ButtonActive.Render("[ No ]")
	if yes {
		yesButton = styles.ButtonActive.Render("[ Yes ]")
		noButton = styles.ButtonInactive.Render("[ No ]")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesButton, "   ", noButton)
	return strings.Join([]string{
		styles.ModalTitle.Render(title),
		"",
		styles.Info.Render(question),
		"",
		buttons,
		"",
		styles.Footer.Render("←/→ select  enter confirm  esc cancel"),
	}, "\n")
}

func (m *Model) viewCountdown() string {
	return strings.Join([]string{
		styles.ModalTitle.Render("Rebooting"),
		"",
		styles.Countdown.Render(fmt.Sprintf("Rebooting in %d…", m.countdown)),
		"",
		styles.Footer.Render("esc to cancel"),
	}, "\n")
}
