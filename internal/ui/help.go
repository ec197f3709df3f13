package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCommands draws the COMMANDS panel. The key column is padded by the
// name column width so the descriptions line up under the branch statuses.
func renderCommands(executable string, indent int, branchName string) string {
	headerStyle := lipgloss.NewStyle().Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	padding := strings.Repeat(" ", indent)

	deleteDesc := "no branch selected"
	forceDesc := deleteDesc
	if branchName != "" {
		deleteDesc = fmt.Sprintf("%s branch -d %s", executable, branchName)
		forceDesc = fmt.Sprintf("%s branch -D %s", executable, branchName)
	}

	rows := []struct{ key, desc string }{
		{"d", deleteDesc},
		{"D", forceDesc},
		{"q", "Quit app"},
	}

	var out strings.Builder
	out.WriteString("\n\n" + headerStyle.Render("COMMANDS") + "\n\n")
	for _, row := range rows {
		out.WriteString("    " + keyStyle.Render(row.key) + padding + "   " + descStyle.Render(row.desc) + "\n\n")
	}

	return out.String()
}
