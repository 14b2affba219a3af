package ui

import "time"

// Screen rows, top to bottom. The footer always sits on the last row.
const (
	headerRow   = 0
	searchRow   = 2
	searchRows  = 3
	hintRow     = searchRow + searchRows
	statusRow   = hintRow + 2
	gridTop     = statusRow + 3
	footerRows  = 1
	marginX     = 2
	buttonWidth = 12
	minInputW   = 16
)

// Card geometry, borders included.
const (
	cardWidth  = 28
	cardHeight = 6
	cardGapX   = 2
	cardGapY   = 1
)

// Modal geometry.
const (
	modalMaxWidth   = 76
	modalMinWidth   = 30
	fieldLabelWidth = 10
	closeLabel      = "[x]"
)

// Diagnostics pane.
const (
	diagnosticsLines   = 500
	diagnosticsRefresh = time.Second
)

// rect is a screen region in cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// searchLayout returns the input box and button regions for a screen width.
func searchLayout(width int) (input, button rect) {
	inputW := width - 2*marginX - 1 - buttonWidth
	if inputW < minInputW {
		inputW = minInputW
	}
	input = rect{X: marginX, Y: searchRow, W: inputW, H: searchRows}
	button = rect{X: marginX + inputW + 1, Y: searchRow, W: buttonWidth, H: searchRows}
	return input, button
}

// gridColumns returns how many cards fit side by side.
func gridColumns(width int) int {
	cols := (width - 2*marginX + cardGapX) / (cardWidth + cardGapX)
	if cols < 1 {
		return 1
	}
	return cols
}

// gridVisibleRows returns how many card rows fit between the grid top and
// the footer.
func gridVisibleRows(height int) int {
	avail := height - gridTop - footerRows
	rows := (avail + cardGapY) / (cardHeight + cardGapY)
	if rows < 1 {
		return 1
	}
	return rows
}

// cardRect returns the region of card index when the grid is scrolled by
// scrollRow rows. ok is false when the card is off screen.
func cardRect(index, cols, scrollRow, visibleRows int) (rect, bool) {
	row := index/cols - scrollRow
	if index < 0 || row < 0 || row >= visibleRows {
		return rect{}, false
	}
	col := index % cols
	return rect{
		X: marginX + col*(cardWidth+cardGapX),
		Y: gridTop + row*(cardHeight+cardGapY),
		W: cardWidth,
		H: cardHeight,
	}, true
}

// centered returns the region of a w×h box centered in a width×height screen.
func centered(width, height, w, h int) rect {
	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return rect{X: x, Y: y, W: w, H: h}
}
