// Package tui implements the Whence feed viewer.
//
// A small BubbleTea/Lipgloss application that renders the demo feed
// with live readable timestamps. Every formatting option of
// pkg/readable can be toggled from the keyboard, so each branch of
// the relative-time cascade is reachable interactively.
//
// Component layout:
//
//	model.go   — root model, message routing, Init/Update
//	view.go    — header, item list, detail pane, footer
//	theme.go   — centralized color + style definitions
//	helpers.go — truncation and layout helpers
package tui
