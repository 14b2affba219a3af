package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/marquee/internal/view"
)

// modalFrame renders the detail modal and returns it with its screen region.
func (m Model) modalFrame(md *view.Modal) (string, rect) {
	var box string
	if md.Loading {
		box = m.renderLoadingModal()
	} else {
		box = m.renderDetailModal(md)
	}
	r := centered(m.width, m.height, lipgloss.Width(box), lipgloss.Height(box))
	return box, r
}

// modalWidth is the outer width of the detail modal for the current screen.
func (m Model) modalWidth() int {
	w := min(m.width-4, modalMaxWidth)
	return max(w, modalMinWidth)
}

// closeRect is where the close control sits inside a detail modal region:
// the right end of the first content row, inside border and padding.
func (m Model) closeRect(box rect) rect {
	w := lipgloss.Width(closeLabel)
	return rect{X: box.X + box.W - 1 - 2 - w, Y: box.Y + 1, W: w, H: 1}
}

func (m Model) renderLoadingModal() string {
	styles := m.theme.Styles()
	return styles.Overlay.Render(m.spinner.View() + " " + styles.Text.Render(view.DetailLoadingText))
}

func (m Model) renderDetailModal(md *view.Modal) string {
	styles := m.theme.Styles()
	outer := m.modalWidth()
	inner := outer - 2 - 4 // border and padding

	var b strings.Builder

	titleText := md.Title
	if md.Year != "" {
		titleText += " (" + md.Year + ")"
	}
	closeW := lipgloss.Width(closeLabel)
	title := padRight(truncate(titleText, inner-closeW-1), inner-closeW)
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString(styles.MutedText.Render(closeLabel))
	b.WriteString("\n\n")

	if line := view.RatingLine(md.Rating); line != "" {
		b.WriteString(styles.Rating.Render(line))
		b.WriteString("\n\n")
	}

	for _, f := range md.Fields {
		b.WriteString(styles.Label.Render(f.Label))
		b.WriteString(styles.Text.Render(wrapIndented(f.Value, inner-fieldLabelWidth, fieldLabelWidth)))
		b.WriteString("\n")
	}
	b.WriteString(styles.Label.Render("Poster"))
	b.WriteString(styles.FaintText.Render(truncate(md.Poster, inner-fieldLabelWidth)))
	b.WriteString("\n")

	if md.Plot != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Plot"))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(lipgloss.NewStyle().Width(inner).Render(md.Plot)))
		b.WriteString("\n")
	}

	if md.IMDbURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.Link.Render(termenv.Hyperlink(md.IMDbURL, view.IMDbLinkText)))
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render("y copy link · esc close"))
	} else {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("esc close"))
	}

	return styles.Modal.Width(outer - 2).Render(b.String())
}

// wrapIndented wraps value to width and indents continuation lines so they
// line up after a field label.
func wrapIndented(value string, width, indent int) string {
	wrapped := lipgloss.NewStyle().Width(max(width, 1)).Render(value)
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", indent) + lines[i]
	}
	return strings.Join(lines, "\n")
}
