package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"ledgerdesk/internal/database/repository"
)

// SeedDefaults ensures a demonstration dataset exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	entRepo := repository.NewEnterpriseRepo(db)
	existing, err := entRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	outline := []struct {
		kind, label, detail string
	}{
		{"parent", "Software Division", "12 contracts"},
		{"minor-item", "Package licenses", "renewals due 2026-09"},
		{"minor-item", "Custom development", "3 active projects"},
		{"sub-category", "Maintenance retainers", "monthly billing"},
		{"parent", "Consulting Division", "5 engagements"},
		{"minor-item", "Process audits", "2 in review"},
		{"sub-category", "Training programs", "quarterly"},
		{"plain", "Corporate overhead", "shared costs"},
		{"parent", "Hardware Resale", "dormant"},
		{"minor-item", "Vendor stock", "warehouse B"},
	}
	for i, row := range outline {
		e := repository.EnterpriseRow{
			ID:        seedID("ent:" + row.label),
			Kind:      row.kind,
			Label:     row.label,
			Detail:    row.detail,
			SortOrder: i,
		}
		if err := entRepo.Upsert(ctx, e); err != nil {
			return err
		}
	}

	acctRepo := repository.NewAccountRepo(db)
	accounts := []repository.Account{
		{ID: seedID("acct:sato"), Name: "Sato", Department: "Accounting", Role: "admin"},
		{ID: seedID("acct:tanaka"), Name: "Tanaka", Department: "Sales", Role: "editor"},
		{ID: seedID("acct:suzuki"), Name: "Suzuki", Department: "Accounting", Role: "viewer"},
	}
	for _, a := range accounts {
		if err := acctRepo.Upsert(ctx, a); err != nil {
			return err
		}
	}

	rankRepo := repository.NewRankingRepo(db)
	rankings := []repository.RankingEntry{
		{Source: "sales", Enterprise: "Northwind Trading", Rank: 1, Score: 920},
		{Source: "sales", Enterprise: "Aozora Systems", Rank: 2, Score: 780},
		{Source: "sales", Enterprise: "Hikari Foods", Rank: 3, Score: 610},
		{Source: "support", Enterprise: "Northwind Trading Co", Rank: 1, Score: 450},
		{Source: "support", Enterprise: "Aozora Systems KK", Rank: 2, Score: 390},
		{Source: "support", Enterprise: "Midori Logistics", Rank: 3, Score: 310},
	}
	for _, e := range rankings {
		e.ID = seedID("rank:" + e.Source + ":" + e.Enterprise)
		if err := rankRepo.Upsert(ctx, e); err != nil {
			return err
		}
	}

	ledgerRepo := repository.NewLedgerRepo(db)
	periods := []string{"Q1", "Q2", "Q3", "Q4"}
	figures := map[string]map[string][]string{
		"software": {
			"Package licenses":  {"1,200", "1,350", "1,180", "1,420"},
			"Custom development": {"3,400", "2,950", "3,780", "4,100"},
			"Maintenance":       {"860", "860", "", "880"},
		},
		"adjustment": {
			"Package licenses":  {"-120", "45", "0", "-60"},
			"Custom development": {"200", "", "-340", "150"},
			"Maintenance":       {"", "15", "20", ""},
		},
	}
	rowOrder := map[string]int{"Package licenses": 0, "Custom development": 1, "Maintenance": 2}
	for sheet, byRow := range figures {
		for label, amounts := range byRow {
			for col, amount := range amounts {
				f := repository.LedgerFigure{
					ID:       seedID("fig:" + sheet + ":" + label + ":" + periods[col]),
					Sheet:    sheet,
					RowLabel: label,
					Period:   periods[col],
					Amount:   amount,
					RowOrder: rowOrder[label],
					ColOrder: col + 1,
				}
				if err := ledgerRepo.Upsert(ctx, f); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
