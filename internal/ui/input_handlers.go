package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/view"
)

// handleKey routes a key press to whichever layer is on top: help, the
// diagnostics pane, the detail modal, then the focused part of the main
// screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	m.flash = ""

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showDiagnostics {
		return m.handleDiagnosticsKey(msg)
	}
	if scr := m.screen(); scr.Modal != nil {
		return m.handleModalKey(msg, scr.Modal.IMDbURL, scr.Modal.Loading)
	}
	if key.Matches(msg, m.keys.HelpAlways) {
		m.showHelp = true
		return m, nil
	}
	if key.Matches(msg, m.keys.Search) {
		return m, m.search()
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.search()
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Escape):
		m.setFocus(focusGrid)
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.controller.SetQuery(value)
		m.snap = m.store.Snapshot()
	}
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.snap.Results)
	cols := gridColumns(m.width)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.EditQuery):
		cmd := m.setFocus(focusInput)
		return m, cmd
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Diagnostics):
		return m.openDiagnostics()
	case key.Matches(msg, m.keys.Open):
		if m.cursor >= 0 && m.cursor < n {
			return m, m.showDetails(m.snap.Results[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, n)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, n)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols, n)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols, n)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-cols*gridVisibleRows(m.height), n)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(cols*gridVisibleRows(m.height), n)
	}
	return m, nil
}

// handleModalKey handles keys while the detail modal is open. The modal
// captures the keyboard; only dismissal and copying the link do anything.
func (m Model) handleModalKey(msg tea.KeyMsg, link string, loading bool) (tea.Model, tea.Cmd) {
	if loading {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.dismiss()
	case key.Matches(msg, m.keys.CopyLink):
		m.copyLink(link)
	}
	return m, nil
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Diagnostics) || key.Matches(msg, m.keys.Quit) {
		m.showDiagnostics = false
		return m, nil
	}
	var cmd tea.Cmd
	m.diagnostics, cmd = m.diagnostics.Update(msg)
	return m, cmd
}

func (m Model) openDiagnostics() (tea.Model, tea.Cmd) {
	if m.logPath == "" {
		m.flash = "Diagnostics log is disabled"
		return m, nil
	}
	m.showDiagnostics = true
	m.diagnostics.GotoBottom()
	return m, tea.Batch(m.tailLog(), diagnosticsTick())
}

// handleMouse maps clicks and wheel events onto the same operations the keys
// trigger.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || !m.ready {
		return m, nil
	}
	if m.showDiagnostics {
		var cmd tea.Cmd
		m.diagnostics, cmd = m.diagnostics.Update(msg)
		return m, cmd
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-1)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scroll(1)
			return m, nil
		}
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.flash = ""

	if scr := m.screen(); scr.Modal != nil {
		return m.clickModal(msg.X, msg.Y, scr)
	}
	return m.clickMain(msg.X, msg.Y)
}

// clickModal dismisses the detail when the click lands on the overlay or the
// close control. Clicks inside the content are contained.
func (m Model) clickModal(x, y int, scr view.Screen) (tea.Model, tea.Cmd) {
	if scr.Modal.Loading {
		return m, nil
	}
	_, box := m.modalFrame(scr.Modal)
	if box.contains(x, y) && !m.closeRect(box).contains(x, y) {
		return m, nil
	}
	m.dismiss()
	return m, nil
}

func (m Model) clickMain(x, y int) (tea.Model, tea.Cmd) {
	input, button := searchLayout(m.width)
	switch {
	case button.contains(x, y):
		return m, m.search()
	case input.contains(x, y):
		cmd := m.setFocus(focusInput)
		return m, cmd
	}

	cols := gridColumns(m.width)
	rows := gridVisibleRows(m.height)
	for i := range m.snap.Results {
		r, ok := cardRect(i, cols, m.scrollRow, rows)
		if ok && r.contains(x, y) {
			m.cursor = i
			m.setFocus(focusGrid)
			return m, m.showDetails(m.snap.Results[i].ID)
		}
	}
	return m, nil
}

func (m *Model) dismiss() {
	m.controller.Dismiss()
	m.snap = m.store.Snapshot()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) moveCursor(delta, n int) {
	if n == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m *Model) scroll(delta int) {
	n := len(m.snap.Results)
	if n == 0 {
		return
	}
	cols := gridColumns(m.width)
	totalRows := (n + cols - 1) / cols
	maxScroll := max(totalRows-gridVisibleRows(m.height), 0)
	m.scrollRow = min(max(m.scrollRow+delta, 0), maxScroll)

	// Keep the cursor on a visible card.
	first := m.scrollRow * cols
	last := min((m.scrollRow+gridVisibleRows(m.height))*cols, n) - 1
	if m.cursor < first {
		m.cursor = first
	}
	if m.cursor > last {
		m.cursor = last
	}
}
