// Package ledger holds the sheet model and the profit derivation: three
// positionally aligned sheets where every profit cell is recomputed from the
// software and adjustment cells at the same position.
package ledger

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sheet is one displayed table: a header and rows of cell strings. Cells
// hold amounts as displayed text, possibly thousands-grouped, possibly blank.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Cell returns the cell text at (row, col) and whether the position exists.
func (s *Sheet) Cell(row, col int) (string, bool) {
	if s == nil || row < 0 || row >= len(s.Rows) {
		return "", false
	}
	cells := s.Rows[row]
	if col < 0 || col >= len(cells) {
		return "", false
	}
	return cells[col], true
}

// SetCell writes text at (row, col) when the position exists.
func (s *Sheet) SetCell(row, col int, text string) bool {
	if s == nil || row < 0 || row >= len(s.Rows) {
		return false
	}
	if col < 0 || col >= len(s.Rows[row]) {
		return false
	}
	s.Rows[row][col] = text
	return true
}

// Triple is the software/adjustment/profit sheet set. LabelColumns leading
// columns are skipped by recalculation; the default 1 reserves column 0 for
// the row label.
type Triple struct {
	Software     *Sheet
	Adjustment   *Sheet
	Profit       *Sheet
	LabelColumns int
}

// Recalculate re-derives every profit cell from the current software and
// adjustment cells: profit[i][j] = software[i][j] + adjustment[i][j], blank
// or unparseable cells counting as zero. Positions missing from any of the
// three sheets are skipped. Idempotent; keeps no memory between runs.
func (t *Triple) Recalculate() {
	if t == nil || t.Software == nil || t.Adjustment == nil || t.Profit == nil {
		return
	}
	start := t.LabelColumns
	if start < 1 {
		start = 1
	}
	for i := range t.Profit.Rows {
		for j := start; j < len(t.Profit.Rows[i]); j++ {
			soft, ok := t.Software.Cell(i, j)
			if !ok {
				continue
			}
			adj, ok := t.Adjustment.Cell(i, j)
			if !ok {
				continue
			}
			sum := ParseAmount(soft) + ParseAmount(adj)
			t.Profit.Rows[i][j] = FormatAmount(sum)
		}
	}
}

// ParseAmount reads a displayed amount: grouping separators and surrounding
// space are stripped, blank or unparseable text counts as zero.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount as a thousands-grouped string.
func FormatAmount(v float64) string {
	return amountPrinter.Sprint(number.Decimal(v))
}
