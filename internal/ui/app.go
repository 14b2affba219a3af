package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/explorer"
	"github.com/five82/marquee/internal/logtail"
	"github.com/five82/marquee/internal/poster"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/view"
)

// focus says which part of the main screen receives keys.
type focus int

const (
	focusInput focus = iota
	focusGrid
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *explorer.Controller
	// Prober checks poster URLs after results arrive. Nil disables probing.
	Prober *poster.Prober
	Logger *zerolog.Logger

	Placeholder     string
	IMDbURLTemplate string

	ThemeName string
	PrefsPath string
	// LogPath is tailed by the diagnostics pane. Empty disables the pane.
	LogPath string

	// Clipboard writes text to the system clipboard. Defaults to
	// atotto/clipboard.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	controller *explorer.Controller
	store      *state.Store
	prober     *poster.Prober
	logger     zerolog.Logger
	keys       keyMap

	placeholder     string
	imdbURLTemplate string
	prefsPath       string
	logPath         string
	clipboard       func(string) error

	changes     <-chan struct{}
	unsubscribe func()

	theme  Theme
	width  int
	height int
	ready  bool

	snap state.UIState

	input     textinput.Model
	spinner   spinner.Model
	focus     focus
	cursor    int
	scrollRow int

	showHelp        bool
	showDiagnostics bool
	diagnostics     viewport.Model

	flash string
}

// New creates a new Bubble Tea model and subscribes it to the store.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Search for movies..."
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	diagnostics := viewport.New(0, 0)

	m := Model{
		ctx:             ctx,
		controller:      opts.Controller,
		store:           opts.Controller.Store(),
		prober:          opts.Prober,
		logger:          logger,
		keys:            DefaultKeyMap(),
		placeholder:     opts.Placeholder,
		imdbURLTemplate: opts.IMDbURLTemplate,
		prefsPath:       prefsPath,
		logPath:         opts.LogPath,
		clipboard:       copyFn,
		theme:           GetTheme(themeName),
		input:           input,
		spinner:         spin,
		focus:           focusInput,
		diagnostics:     diagnostics,
	}
	m.changes, m.unsubscribe = m.store.Subscribe()
	m.snap = m.store.Snapshot()
	m.input.SetValue(m.snap.Query)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForChange(m.ctx, m.changes),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, waitForChange(m.ctx, m.changes)

	case searchDoneMsg:
		m.refresh()
		return m, m.probePosters()

	case detailDoneMsg:
		m.refresh()
		return m, m.probePosters()

	case postersProbedMsg:
		if len(msg.failed) > 0 {
			m.logger.Debug().Int("count", len(msg.failed)).Msg("posters replaced by placeholder")
		}
		return m, nil

	case diagnosticsTickMsg:
		if !m.showDiagnostics {
			return m, nil
		}
		return m, tea.Batch(m.tailLog(), diagnosticsTick())

	case diagnosticsMsg:
		m.setDiagnostics(msg.lines, msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	scr := m.screen()
	if scr.Modal != nil {
		box, r := m.modalFrame(scr.Modal)
		return overlayLines(box, r, m.width, m.height)
	}
	return m.renderMain(scr)
}

// screen renders the current snapshot through the view decision table.
func (m Model) screen() view.Screen {
	return view.Render(m.snap, view.Options{
		Placeholder:     m.placeholder,
		IMDbURLTemplate: m.imdbURLTemplate,
		PosterFailed:    m.prober.Failed,
	})
}

// refresh pulls the latest state and keeps the cursor in range.
func (m *Model) refresh() {
	m.snap = m.store.Snapshot()
	if n := len(m.snap.Results); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	if len(m.snap.Results) == 0 {
		m.scrollRow = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) resize() {
	input, _ := searchLayout(m.width)
	// Border, prompt, cursor cell, and one spare column.
	m.input.Width = max(input.W-2-runewidth.StringWidth(m.input.Prompt)-2, 1)
	m.diagnostics.Width = max(m.width-2*marginX, 1)
	m.diagnostics.Height = max(m.height-3, 1)
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.width == 0 || m.height == 0 {
		return
	}
	cols := gridColumns(m.width)
	rows := gridVisibleRows(m.height)
	row := m.cursor / cols
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}
}

// quit releases the store subscription and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	return m, tea.Quit
}

// search records the field text and dispatches a search when the trimmed
// query is non-empty.
func (m Model) search() tea.Cmd {
	m.controller.SetQuery(m.input.Value())
	if !m.controller.CanSearch() {
		return nil
	}
	c, ctx := m.controller, m.ctx
	return func() tea.Msg {
		c.Search(ctx)
		return searchDoneMsg{}
	}
}

// showDetails dispatches a detail lookup for id.
func (m Model) showDetails(id string) tea.Cmd {
	c, ctx := m.controller, m.ctx
	return func() tea.Msg {
		c.ShowDetails(ctx, id)
		return detailDoneMsg{}
	}
}

// probePosters checks every poster currently on screen that has not been
// checked yet.
func (m Model) probePosters() tea.Cmd {
	if m.prober == nil {
		return nil
	}
	urls := make([]string, 0, len(m.snap.Results)+1)
	for _, r := range m.snap.Results {
		urls = append(urls, r.Poster)
	}
	if m.snap.Selected != nil {
		urls = append(urls, m.snap.Selected.Poster)
	}
	p, ctx := m.prober, m.ctx
	return func() tea.Msg {
		return postersProbedMsg{failed: p.Probe(ctx, urls)}
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn().Err(err).Msg("save prefs")
	}
}

func (m *Model) copyLink(url string) {
	if url == "" {
		return
	}
	if err := m.clipboard(url); err != nil {
		m.logger.Warn().Err(err).Msg("copy link")
		m.flash = "Copy failed"
		return
	}
	m.flash = "Copied " + url
}

func (m Model) tailLog() tea.Cmd {
	path := m.logPath
	return func() tea.Msg {
		lines, err := logtail.Tail(path, diagnosticsLines)
		return diagnosticsMsg{lines: lines, err: err}
	}
}

func (m *Model) setDiagnostics(lines []string, err error) {
	if err != nil {
		m.diagnostics.SetContent("Log unavailable: " + err.Error())
		return
	}
	if len(lines) == 0 {
		m.diagnostics.SetContent("No log entries yet.")
		return
	}
	atBottom := m.diagnostics.AtBottom()
	m.diagnostics.SetContent(strings.Join(lines, "\n"))
	if atBottom || m.diagnostics.YOffset == 0 {
		m.diagnostics.GotoBottom()
	}
}

// Messages

type stateChangedMsg struct{}

type searchDoneMsg struct{}

type detailDoneMsg struct{}

type postersProbedMsg struct {
	failed []string
}

type diagnosticsTickMsg time.Time

type diagnosticsMsg struct {
	lines []string
	err   error
}

// Commands

// waitForChange blocks until the store reports a transition.
func waitForChange(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func diagnosticsTick() tea.Cmd {
	return tea.Tick(diagnosticsRefresh, func(t time.Time) tea.Msg {
		return diagnosticsTickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	defer m.unsubscribe()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
