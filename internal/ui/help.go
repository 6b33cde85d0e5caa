package ui

import (
	"strings"

	"github.com/atomicstack/efi-boot-control/internal/format/table"
)

var helpRows = [][]string{
	{"tab", "switch between the priority and boot-once panels"},
	{"↑/k ↓/j", "move the cursor in the focused panel"},
	{"u / d", "move the selected entry up or down (priority panel)"},
	{"enter", "apply the new order, or boot the selected entry once"},
	{"h / ?", "show this help"},
	{"q / esc", "quit (asks first when the order has unsaved changes)"},
}

func (m *Model) viewHelp() string {
	lines := []string{
		styles.ModalTitle.Render("Keys"),
		"",
	}
	for _, row := range table.Format(helpRows, []table.Alignment{table.AlignRight, table.AlignLeft}) {
		lines = append(lines, styles.Info.Render(row))
	}
	lines = append(lines, "", styles.Footer.Render("press any key to return"))
	return strings.Join(lines, "\n")
}
