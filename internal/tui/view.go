package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/whence-dev/whence/pkg/readable"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - 2 // header + footer

	var body string
	if len(m.items) == 0 {
		body = m.renderEmpty(bodyHeight)
	} else {
		body = m.renderBody(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	brand := headerBrandStyle.Render("whence")
	meta := headerMetaStyle.Render("  " + m.statusMsg)
	return headerBarStyle.Width(m.width).Render(brand + meta)
}

func (m Model) renderEmpty(height int) string {
	empty := emptyStateStyle.Render(
		"Empty feed.\n\n" +
			"Seed the demo feed with: whence seed")
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, empty)
}

// renderBody splits the space between the item list and the detail
// pane for the selected item.
func (m Model) renderBody(height int) string {
	detailHeight := 8
	if height < 12 {
		detailHeight = 0
	}
	listHeight := height - detailHeight

	list := m.renderList(listHeight)
	if detailHeight == 0 {
		return list
	}
	detail := m.renderDetail(detailHeight)
	return lipgloss.JoinVertical(lipgloss.Left, list, detail)
}

func (m Model) renderList(height int) string {
	maxVisible := maxInt(height-1, 1)

	startIdx := 0
	if m.selected >= maxVisible {
		startIdx = m.selected - maxVisible + 1
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(m.items) {
		endIdx = len(m.items)
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		it := m.items[i]

		when := itemWhenStyle.Render(m.relativeLabel(it.PostedAt))
		author := itemAuthorStyle.Render(it.Author)
		bodyWidth := maxInt(m.width-lipgloss.Width(when)-lipgloss.Width(author)-8, 10)
		body := truncate(it.Body, bodyWidth)

		content := fmt.Sprintf("%s  %s  %s", when, author, body)
		if i == m.selected {
			lines = append(lines, itemSelectedStyle.Width(m.width-2).Render(content))
		} else {
			lines = append(lines, itemStyle.Width(m.width-2).Render(content))
		}
	}

	return strings.Join(lines, "\n")
}

// renderDetail shows the selected item's timestamp in every kind the
// library supports, alongside the full body.
func (m Model) renderDetail(height int) string {
	it := m.items[m.selected]
	posted := time.UnixMilli(it.PostedAt)

	rows := []string{
		panelTitleStyle.Render("Item ") + itemDimStyle.Render(it.ItemID),
		detailKeyStyle.Render("posted   ") + detailValStyle.Render(posted.Format("2006-01-02 15:04:05")),
		detailKeyStyle.Render("timeago  ") + detailValStyle.Render(m.relativeLabel(it.PostedAt)),
		detailKeyStyle.Render("clock-24 ") + detailValStyle.Render(m.clockLabel(it.PostedAt, readable.KindClock24)),
		detailKeyStyle.Render("clock    ") + detailValStyle.Render(m.clockLabel(it.PostedAt, readable.KindClockShort)),
		detailKeyStyle.Render("body     ") + detailValStyle.Render(truncate(it.Body, maxInt(m.width-12, 10))),
	}
	if m.err != nil {
		rows = append(rows, errorStyle.Render(m.err.Error()))
	}

	return panelStyle.Width(m.width - 2).Height(height - 1).Render(strings.Join(rows, "\n"))
}

// renderFooter lists navigation keys and shows which formatting
// toggles are live.
func (m Model) renderFooter() string {
	toggles := strings.Join([]string{
		onOff("v:verbose", m.opts.Verbose),
		onOff("w:words", m.opts.ConvertToWords),
		onOff("g:ago", m.opts.IncludeAgoSuffix),
		onOff("t:today", m.opts.IncludeToday),
		onOff("n:justnow", m.opts.IncludeJustNow),
		onOff("d:dow", m.opts.DaysOfWeek),
		onOff("l:longform", m.opts.Longform),
		onOff("a:abbrev", m.opts.AbbreviateDays > 0),
	}, " ")

	nav := footerStyle.Render("j/k:move  r:reload  q:quit  ")
	return nav + toggles
}
