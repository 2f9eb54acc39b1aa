package repository

import (
	"context"
	"database/sql"
)

// RankingRepo handles raw ranking entries per source.
type RankingRepo struct {
	db *sql.DB
}

func NewRankingRepo(db *sql.DB) *RankingRepo {
	return &RankingRepo{db: db}
}

func (r *RankingRepo) Upsert(ctx context.Context, e RankingEntry) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO ranking_entries(id, source, enterprise, rank, score, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 source=excluded.source,
	 enterprise=excluded.enterprise,
	 rank=excluded.rank,
	 score=excluded.score;
	`, e.ID, e.Source, e.Enterprise, e.Rank, e.Score)
	return err
}

// List returns all entries ordered by source then rank.
func (r *RankingRepo) List(ctx context.Context) ([]RankingEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, source, enterprise, rank, score, created_at FROM ranking_entries ORDER BY source, rank`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RankingEntry
	for rows.Next() {
		var e RankingEntry
		if err := rows.Scan(&e.ID, &e.Source, &e.Enterprise, &e.Rank, &e.Score, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
