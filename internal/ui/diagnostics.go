package ui

import (
	"strings"
)

// renderDiagnostics shows the tail of the log file in a scrollable pane.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	pad := strings.Repeat(" ", marginX)

	title := pad + styles.Logo.Render("Diagnostics") + "  " + styles.MutedText.Render(truncate(m.logPath, m.width-2*marginX-14))
	body := strings.Split(m.diagnostics.View(), "\n")
	for i := range body {
		body[i] = pad + body[i]
	}
	footer := pad + styles.Footer.Render("j/k scroll · esc close")

	lines := append([]string{title, ""}, body...)
	lines = fitHeight(lines, m.height-footerRows)
	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}
