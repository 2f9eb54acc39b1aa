package repository

import (
	"context"
	"database/sql"
)

// LedgerRepo handles source-sheet figures.
type LedgerRepo struct {
	db *sql.DB
}

func NewLedgerRepo(db *sql.DB) *LedgerRepo {
	return &LedgerRepo{db: db}
}

func (r *LedgerRepo) Upsert(ctx context.Context, f LedgerFigure) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO ledger_figures(id, sheet, row_label, period, amount, row_order, col_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 sheet=excluded.sheet,
	 row_label=excluded.row_label,
	 period=excluded.period,
	 amount=excluded.amount,
	 row_order=excluded.row_order,
	 col_order=excluded.col_order;
	`, f.ID, f.Sheet, f.RowLabel, f.Period, f.Amount, f.RowOrder, f.ColOrder)
	return err
}

// List returns every stored figure across sheets.
func (r *LedgerRepo) List(ctx context.Context) ([]LedgerFigure, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, sheet, row_label, period, amount, row_order, col_order
	FROM ledger_figures ORDER BY sheet, row_order, col_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LedgerFigure
	for rows.Next() {
		var f LedgerFigure
		if err := rows.Scan(&f.ID, &f.Sheet, &f.RowLabel, &f.Period, &f.Amount, &f.RowOrder, &f.ColOrder); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ListBySheet returns one sheet's figures in position order.
func (r *LedgerRepo) ListBySheet(ctx context.Context, sheet string) ([]LedgerFigure, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, sheet, row_label, period, amount, row_order, col_order
	FROM ledger_figures WHERE sheet = ? ORDER BY row_order, col_order`, sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LedgerFigure
	for rows.Next() {
		var f LedgerFigure
		if err := rows.Scan(&f.ID, &f.Sheet, &f.RowLabel, &f.Period, &f.Amount, &f.RowOrder, &f.ColOrder); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
