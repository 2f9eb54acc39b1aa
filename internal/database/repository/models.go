package repository

import "time"

// EnterpriseRow is one row of the enterprise outline: a parent category, a
// minor item or sub-category governed by the nearest preceding parent, or a
// plain row that ends a dependent run.
type EnterpriseRow struct {
	ID        string
	Kind      string
	Label     string
	Detail    string
	SortOrder int
}

// Account represents an administrator account row.
type Account struct {
	ID         string
	Name       string
	Department string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RankingEntry is one enterprise's placement in one ranking source.
type RankingEntry struct {
	ID         string
	Source     string
	Enterprise string
	Rank       int
	Score      float64
	CreatedAt  time.Time
}

// LedgerFigure is a single source-sheet cell: sheet is "software" or
// "adjustment", amount is the displayed text (possibly comma-grouped,
// possibly blank).
type LedgerFigure struct {
	ID       string
	Sheet    string
	RowLabel string
	Period   string
	Amount   string
	RowOrder int
	ColOrder int
}
