package repository

import (
	"context"
	"database/sql"
)

// EnterpriseRepo handles enterprise outline rows.
type EnterpriseRepo struct {
	db *sql.DB
}

func NewEnterpriseRepo(db *sql.DB) *EnterpriseRepo {
	return &EnterpriseRepo{db: db}
}

func (r *EnterpriseRepo) Upsert(ctx context.Context, row EnterpriseRow) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO enterprise_rows(id, kind, label, detail, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 kind=excluded.kind,
	 label=excluded.label,
	 detail=excluded.detail,
	 sort_order=excluded.sort_order;
	`, row.ID, row.Kind, row.Label, row.Detail, row.SortOrder)
	return err
}

// List returns outline rows in document order.
func (r *EnterpriseRepo) List(ctx context.Context) ([]EnterpriseRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, kind, label, detail, sort_order FROM enterprise_rows ORDER BY sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []EnterpriseRow
	for rows.Next() {
		var e EnterpriseRow
		if err := rows.Scan(&e.ID, &e.Kind, &e.Label, &e.Detail, &e.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
