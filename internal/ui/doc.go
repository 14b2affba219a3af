// Package ui provides the terminal user interface for Marquee.
//
// The UI is a Bubble Tea program. Model owns presentation state only: focus,
// cursor, scroll position, theme, and overlays. Everything the user can see
// about searches and details comes from state.Store snapshots rendered
// through view.Render, so the terminal and the headless CLI agree on what a
// given state looks like.
//
// # Screens
//
//   - Search page: search field and button, hint, result heading or empty
//     state, and a grid of result cards
//   - Detail modal: centered over a blank overlay; a click outside the box or
//     on the close control dismisses it
//   - Help overlay (? or F1)
//   - Diagnostics pane (L): tail of the log file, refreshed every second
//
// # Event Flow
//
//  1. New subscribes to the store; Init starts waiting for change signals
//  2. Keys and clicks call the explorer.Controller inside tea.Cmds
//  3. Each store transition arrives as a stateChangedMsg and the model
//     re-reads the snapshot
//  4. Run returns when the user quits or the context is cancelled
//
// Layout geometry lives in layout.go and is shared by rendering and mouse
// hit-testing.
package ui
