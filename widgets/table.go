package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table renders a header row and data rows with padded columns. Columns
// after the first are right-aligned, which suits amount sheets.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	lines := []string{t.formatRow(t.Headers, widths)}
	for _, row := range t.Rows {
		lines = append(lines, t.formatRow(row, widths))
		if len(lines) >= height {
			break
		}
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

func (t Table) formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == 0 {
			parts[i] = padRight(cell, widths[i])
		} else {
			parts[i] = padLeft(cell, widths[i])
		}
	}
	return strings.Join(parts, "  ")
}

func padLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
