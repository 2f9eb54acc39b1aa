package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"ledgerdesk/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	menu := renderMenuRow(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	chrome := lipgloss.Height(header) + lipgloss.Height(menu) + lipgloss.Height(status) + lipgloss.Height(footer)
	available := m.height - chrome
	if available < 0 {
		available = 0
	}
	bodyHeight := available
	var body string
	if len(m.tabs) > 0 && bodyHeight > 0 {
		body = m.tabs[m.activeTab].Build(&m).Render(max(1, m.width-2), bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.TrimSuffix(strings.Join([]string{header, menu, status, body}, "\n"), "\n")
	main = fitHeight(main, chrome-lipgloss.Height(footer)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	tabs := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, t.Title())
		if i == m.activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Render("Ledgerdesk")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

// renderMenuRow draws the menu triggers and, when one is open, its entries
// inline after the triggers. At most one submenu renders open.
func renderMenuRow(m Model) string {
	items := m.menu.Items()
	if len(items) == 0 {
		return renderHeaderBar(headerBarStyle, max(1, m.width), "")
	}
	parts := make([]string, 0, len(items)+4)
	for i, item := range items {
		if i == m.menu.OpenIndex() {
			parts = append(parts, menuTriggerOpenStyle.Render(item.Label+" ▾"))
		} else {
			parts = append(parts, menuTriggerStyle.Render(item.Label))
		}
	}
	line := strings.Join(parts, tabSepStyle.Render(" "))
	if open := m.menu.OpenIndex(); open >= 0 {
		entries := items[open].Entries
		sub := make([]string, 0, len(entries))
		for i, e := range entries {
			if i == m.menu.Cursor() {
				sub = append(sub, menuEntryCursorStyle.Render(e.Label))
			} else {
				sub = append(sub, menuEntryStyle.Render(e.Label))
			}
		}
		line += tabSepStyle.Render(" │ ") + strings.Join(sub, tabSepStyle.Render("·"))
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
