package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette — GitHub Dark aesthetic
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBgSurface = lipgloss.Color("#161b22")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")
	colorRed    = lipgloss.Color("#f85149")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Feed list
var (
	itemStyle = lipgloss.NewStyle().
			Foreground(colorText)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorHighlight)

	itemAuthorStyle = lipgloss.NewStyle().
			Foreground(colorPurple)

	itemWhenStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	itemDimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Detail pane
var (
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	detailValStyle = lipgloss.NewStyle().
			Foreground(colorText)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{Top: "─"}).
			BorderForeground(colorDivider)
)

// Footer / status
var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	footerToggleOnStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)
)
