package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens value to at most limit display cells, ending with an
// ellipsis when cut. Wide runes count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return runewidth.Truncate(value, 1, "")
	}
	return runewidth.Truncate(value, limit, "…")
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// overlayLines places box at r on an otherwise blank width×height screen.
func overlayLines(box string, r rect, width, height int) string {
	boxLines := strings.Split(box, "\n")
	lines := make([]string, height)
	indent := strings.Repeat(" ", r.X)
	for i := range lines {
		j := i - r.Y
		if j >= 0 && j < len(boxLines) {
			lines[i] = indent + boxLines[j]
		}
	}
	return strings.Join(lines, "\n")
}

// fitHeight pads or cuts lines to exactly height rows.
func fitHeight(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

