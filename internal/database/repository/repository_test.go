package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	schema, err := os.ReadFile("../migrations/000001_init.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestEnterpriseUpsertAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEnterpriseRepo(openTestDB(t))

	rows := []EnterpriseRow{
		{ID: "b", Kind: "minor-item", Label: "Licenses", SortOrder: 1},
		{ID: "a", Kind: "parent", Label: "Software", Detail: "12 contracts", SortOrder: 0},
	}
	for _, r := range rows {
		if err := repo.Upsert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("rows must come back in sort order, got %v", got)
	}

	// upsert replaces in place
	if err := repo.Upsert(ctx, EnterpriseRow{ID: "a", Kind: "parent", Label: "Software Division", SortOrder: 0}); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.List(ctx)
	if len(got) != 2 || got[0].Label != "Software Division" {
		t.Fatalf("upsert should update existing row, got %v", got)
	}
}

func TestEnterpriseKindConstraint(t *testing.T) {
	repo := NewEnterpriseRepo(openTestDB(t))
	err := repo.Upsert(context.Background(), EnterpriseRow{ID: "x", Kind: "bogus", Label: "Bad"})
	if err == nil {
		t.Fatalf("unknown kind must be rejected by the schema")
	}
}

func TestAccountUpsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepo(openTestDB(t))
	if err := repo.Upsert(ctx, Account{ID: "1", Name: "Sato", Department: "Accounting", Role: "admin"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Upsert(ctx, Account{ID: "1", Name: "Sato", Department: "Accounting", Role: "viewer"}); err != nil {
		t.Fatal(err)
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Role != "viewer" {
		t.Fatalf("role should update on conflict, got %v", got)
	}
}

func TestRankingListOrderedBySourceThenRank(t *testing.T) {
	ctx := context.Background()
	repo := NewRankingRepo(openTestDB(t))
	entries := []RankingEntry{
		{ID: "1", Source: "support", Enterprise: "B", Rank: 2, Score: 1},
		{ID: "2", Source: "sales", Enterprise: "A", Rank: 1, Score: 2},
		{ID: "3", Source: "sales", Enterprise: "C", Rank: 2, Score: 3},
	}
	for _, e := range entries {
		if err := repo.Upsert(ctx, e); err != nil {
			t.Fatal(err)
		}
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].Source != "sales" || got[0].Rank != 1 || got[2].Source != "support" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestLedgerListBySheetScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepo(openTestDB(t))
	figures := []LedgerFigure{
		{ID: "s11", Sheet: "software", RowLabel: "L", Period: "Q2", Amount: "2", RowOrder: 1, ColOrder: 2},
		{ID: "s10", Sheet: "software", RowLabel: "L", Period: "Q1", Amount: "1", RowOrder: 1, ColOrder: 1},
		{ID: "a00", Sheet: "adjustment", RowLabel: "K", Period: "Q1", Amount: "9", RowOrder: 0, ColOrder: 1},
	}
	for _, f := range figures {
		if err := repo.Upsert(ctx, f); err != nil {
			t.Fatal(err)
		}
	}
	soft, err := repo.ListBySheet(ctx, "software")
	if err != nil {
		t.Fatal(err)
	}
	if len(soft) != 2 || soft[0].ID != "s10" || soft[1].ID != "s11" {
		t.Fatalf("sheet scope or position order wrong: %v", soft)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("List returns every sheet's figures, got %d", len(all))
	}
}
