package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/view"
)

// renderMain renders the search page: header, search bar, status, grid, and
// footer, one slice entry per screen row.
func (m Model) renderMain(scr view.Screen) string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader(), "")
	lines = append(lines, m.renderSearchBar(scr)...)
	lines = append(lines, m.renderHint(scr), "")
	lines = append(lines, m.renderStatus(scr)...)
	lines = append(lines, "")
	lines = append(lines, m.renderGrid(scr)...)

	body := fitHeight(lines, m.height-footerRows)
	body = append(body, m.renderFooter())
	return strings.Join(body, "\n")
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	return strings.Repeat(" ", marginX) +
		styles.Logo.Render("🎬 "+view.AppTitle) + "  " +
		styles.MutedText.Render(view.AppTagline)
}

// renderSearchBar returns exactly searchRows lines.
func (m Model) renderSearchBar(scr view.Screen) []string {
	styles := m.theme.Styles()
	inputRect, buttonRect := searchLayout(m.width)

	inputStyle := styles.Input
	if m.focus == focusInput {
		inputStyle = styles.InputFocus
	}
	input := inputStyle.Width(inputRect.W - 2).Render(m.input.View())

	label := "Search"
	buttonStyle := styles.Button
	if scr.Searching {
		label = m.spinner.View() + "…"
	}
	if scr.SearchDisabled {
		buttonStyle = styles.ButtonDisabled
	}
	button := buttonStyle.Width(buttonRect.W - 2).Render(label)

	inputLines := strings.Split(input, "\n")
	buttonLines := strings.Split(button, "\n")
	out := make([]string, searchRows)
	pad := strings.Repeat(" ", marginX)
	for i := range out {
		var in, btn string
		if i < len(inputLines) {
			in = inputLines[i]
		}
		if i < len(buttonLines) {
			btn = buttonLines[i]
		}
		out[i] = pad + in + " " + btn
	}
	return out
}

func (m Model) renderHint(scr view.Screen) string {
	if scr.Hint == "" {
		return ""
	}
	return strings.Repeat(" ", marginX) + m.theme.Styles().FaintText.Render(scr.Hint)
}

// renderStatus returns two lines: the heading, spinner, or empty state.
func (m Model) renderStatus(scr view.Screen) []string {
	styles := m.theme.Styles()
	pad := strings.Repeat(" ", marginX)
	switch {
	case scr.Searching:
		return []string{pad + m.spinner.View() + " " + styles.AccentText.Render(view.SearchingText), ""}
	case scr.Empty:
		return []string{
			pad + styles.Text.Bold(true).Render(view.EmptyTitle),
			pad + styles.MutedText.Render(view.EmptyHint),
		}
	case scr.Heading != "":
		return []string{pad + styles.Text.Bold(true).Render(scr.Heading), ""}
	}
	return []string{"", ""}
}

// renderGrid lays cards out row by row from the current scroll position.
func (m Model) renderGrid(scr view.Screen) []string {
	if len(scr.Cards) == 0 {
		return nil
	}
	cols := gridColumns(m.width)
	rows := gridVisibleRows(m.height)
	pad := strings.Repeat(" ", marginX)
	gap := strings.Repeat(" ", cardGapX)

	var out []string
	for row := 0; row < rows; row++ {
		start := (m.scrollRow + row) * cols
		if start >= len(scr.Cards) {
			break
		}
		end := min(start+cols, len(scr.Cards))
		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered = append(rendered, m.renderCard(scr.Cards[i], i == m.cursor && m.focus == focusGrid))
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, gap)...)
		if row > 0 {
			for i := 0; i < cardGapY; i++ {
				out = append(out, "")
			}
		}
		for _, line := range strings.Split(block, "\n") {
			out = append(out, pad+line)
		}
	}
	return out
}

func (m Model) renderCard(c view.Card, focused bool) string {
	styles := m.theme.Styles()
	inner := cardWidth - 4 // border and padding

	posterLine := styles.FaintText.Render("▢ no image")
	if c.Poster != m.placeholderPath() {
		posterLine = styles.AccentText.Render("▣ poster")
	}
	title := styles.Text.Bold(true).Render(truncate(c.Title, inner))
	year := styles.MutedText.Render(truncate(c.Year, inner))
	badge := ""
	if c.Badge != "" {
		badge = styles.Badge.Render(truncate(c.Badge, inner-2))
	}

	style := styles.Card
	if focused {
		style = styles.CardFocus
	}
	return style.
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render(strings.Join([]string{posterLine, title, year, badge}, "\n"))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.flash != "" {
		return strings.Repeat(" ", marginX) + styles.WarningText.Render(m.flash)
	}
	var hints []string
	if m.focus == focusInput {
		hints = []string{"enter search", "tab results", "f1 help", "ctrl+c quit"}
	} else {
		hints = []string{"enter details", "/ search", "? help", "T theme", "L log", "q quit"}
	}
	return strings.Repeat(" ", marginX) + styles.Footer.Render(truncate(strings.Join(hints, " · "), m.width-2*marginX))
}

// placeholderPath is the image the renderer substitutes for missing posters.
func (m Model) placeholderPath() string {
	return poster.Source("", m.placeholder, nil)
}

func interleave(parts []string, sep string) []string {
	if len(parts) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
