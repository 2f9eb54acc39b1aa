package service

import (
	"context"
	"fmt"
	"sort"

	"ledgerdesk/internal/database/repository"
	"ledgerdesk/ledger"
)

// LedgerLoader assembles the software/adjustment/profit triple from stored
// figures. The profit sheet starts blank and is filled by recalculation.
type LedgerLoader struct {
	Figures      *repository.LedgerRepo
	LabelColumns int
}

func (l *LedgerLoader) LoadTriple(ctx context.Context) (*ledger.Triple, error) {
	software, err := l.loadSheet(ctx, "software", "Software Revenue")
	if err != nil {
		return nil, fmt.Errorf("load software sheet: %w", err)
	}
	adjustment, err := l.loadSheet(ctx, "adjustment", "Adjustments")
	if err != nil {
		return nil, fmt.Errorf("load adjustment sheet: %w", err)
	}
	profit := blankShadow(software, "Profit")
	labelCols := l.LabelColumns
	if labelCols < 1 {
		labelCols = 1
	}
	return &ledger.Triple{
		Software:     software,
		Adjustment:   adjustment,
		Profit:       profit,
		LabelColumns: labelCols,
	}, nil
}

func (l *LedgerLoader) loadSheet(ctx context.Context, key, name string) (*ledger.Sheet, error) {
	figures, err := l.Figures.ListBySheet(ctx, key)
	if err != nil {
		return nil, err
	}

	periodByCol := map[int]string{}
	labelByRow := map[int]string{}
	maxRow, maxCol := -1, 0
	for _, f := range figures {
		periodByCol[f.ColOrder] = f.Period
		labelByRow[f.RowOrder] = f.RowLabel
		if f.RowOrder > maxRow {
			maxRow = f.RowOrder
		}
		if f.ColOrder > maxCol {
			maxCol = f.ColOrder
		}
	}

	cols := make([]int, 0, len(periodByCol))
	for c := range periodByCol {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	columns := make([]string, maxCol+1)
	columns[0] = "Item"
	for _, c := range cols {
		columns[c] = periodByCol[c]
	}

	rows := make([][]string, maxRow+1)
	for i := range rows {
		rows[i] = make([]string, maxCol+1)
		rows[i][0] = labelByRow[i]
	}
	for _, f := range figures {
		if f.RowOrder >= 0 && f.RowOrder < len(rows) && f.ColOrder > 0 && f.ColOrder < len(rows[f.RowOrder]) {
			rows[f.RowOrder][f.ColOrder] = f.Amount
		}
	}

	return &ledger.Sheet{Name: name, Columns: columns, Rows: rows}, nil
}

// blankShadow builds a sheet with src's shape: labels kept, amount cells
// empty.
func blankShadow(src *ledger.Sheet, name string) *ledger.Sheet {
	rows := make([][]string, len(src.Rows))
	for i, srcRow := range src.Rows {
		rows[i] = make([]string, len(srcRow))
		if len(srcRow) > 0 {
			rows[i][0] = srcRow[0]
		}
	}
	return &ledger.Sheet{
		Name:    name,
		Columns: append([]string(nil), src.Columns...),
		Rows:    rows,
	}
}
