package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/whence-dev/whence/internal/feed"
	"github.com/whence-dev/whence/pkg/readable"
)

// Model is the root BubbleTea model for the feed viewer. State is
// organized by concern; rendering is delegated to view.go.
type Model struct {
	store feed.Store
	clock clockwork.Clock

	// Data
	items []*feed.Item

	// Formatting state, mutated by keyboard toggles.
	opts readable.Options

	// UI state
	selected     int
	scrollOffset int
	width        int
	height       int

	// Status
	statusMsg string
	err       error
}

// NewModel creates a feed viewer backed by the given store.
func NewModel(store feed.Store) Model {
	return Model{
		store:     store,
		clock:     clockwork.NewRealClock(),
		opts:      readable.DefaultOptions(),
		statusMsg: "Loading feed...",
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type itemsLoadedMsg []*feed.Item
type tickMsg time.Time
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadItems(), tick())
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.store.QueryItems(feed.Filter{Limit: 100})
		if err != nil {
			return errMsg{err}
		}
		return itemsLoadedMsg(items)
	}
}

// tick re-renders once a minute so relative labels stay current.
func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case itemsLoadedMsg:
		m.items = []*feed.Item(msg)
		m.selected = clamp(m.selected, 0, maxInt(len(m.items)-1, 0))
		if len(m.items) > 0 {
			m.statusMsg = fmt.Sprintf("%d items", len(m.items))
		} else {
			m.statusMsg = "Empty feed"
		}
		return m, nil

	case tickMsg:
		return m, tick()

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: navigation plus one toggle per
// formatting option.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "r":
		return m, m.loadItems()

	// ── Option toggles ──

	case "v":
		m.opts.Verbose = !m.opts.Verbose
	case "w":
		m.opts.ConvertToWords = !m.opts.ConvertToWords
	case "g":
		m.opts.IncludeAgoSuffix = !m.opts.IncludeAgoSuffix
	case "t":
		m.opts.IncludeToday = !m.opts.IncludeToday
	case "n":
		m.opts.IncludeJustNow = !m.opts.IncludeJustNow
	case "d":
		m.opts.DaysOfWeek = !m.opts.DaysOfWeek
	case "l":
		m.opts.Longform = !m.opts.Longform
	case "a":
		// Cycle abbreviation: off → 3-letter names → off.
		if m.opts.AbbreviateDays == 0 {
			m.opts.AbbreviateDays = 3
			m.opts.AbbreviateMonths = 3
		} else {
			m.opts.AbbreviateDays = 0
			m.opts.AbbreviateMonths = 0
		}
	}

	return m, nil
}

// relativeLabel formats an item's timestamp with the current toggles.
func (m Model) relativeLabel(postedMs int64) string {
	f, err := readable.NewFormatter(readable.KindTimeago, readable.LocaleEnUS, m.opts)
	if err != nil {
		return "?"
	}
	now := m.clock.Now()
	out, err := f.WithClock(m.clock).Render(time.UnixMilli(postedMs).In(now.Location()))
	if err != nil {
		return "?"
	}
	return out
}

// clockLabel formats an item's timestamp in a fixed clock kind for
// the detail pane.
func (m Model) clockLabel(postedMs int64, kind readable.Kind) string {
	out, err := readable.Format(time.UnixMilli(postedMs), kind, readable.LocaleEnUS, m.opts)
	if err != nil {
		return "?"
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
