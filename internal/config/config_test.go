package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEDGERDESK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.CurrencySymbol != "¥" {
		t.Fatalf("default currency = %q", cfg.UI.CurrencySymbol)
	}
	if cfg.UI.DisclosureGuard != "caret-only" {
		t.Fatalf("default guard = %q", cfg.UI.DisclosureGuard)
	}
	if cfg.Ledger.LabelColumns != 1 {
		t.Fatalf("default label columns = %d", cfg.Ledger.LabelColumns)
	}
	if cfg.Database.Path == "" {
		t.Fatalf("database path must default to a real location")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LEDGERDESK_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("LEDGERDESK_UI_DISCLOSURE_GUARD", "ignore-buttons")
	t.Setenv("LEDGERDESK_LEDGER_LABEL_COLUMNS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.DisclosureGuard != "ignore-buttons" {
		t.Fatalf("env override ignored, got %q", cfg.UI.DisclosureGuard)
	}
	if cfg.Ledger.LabelColumns != 2 {
		t.Fatalf("env override ignored, got %d", cfg.Ledger.LabelColumns)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("LEDGERDESK_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/test.db"},
		UI:       UIConfig{CurrencySymbol: "$", DisclosureGuard: "ignore-buttons"},
		Ledger:   LedgerConfig{LabelColumns: 2},
	}
	if err := Save(want); err != nil {
		t.Fatal(err)
	}
	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Database.Path != want.Database.Path || got.UI.CurrencySymbol != want.UI.CurrencySymbol ||
		got.UI.DisclosureGuard != want.UI.DisclosureGuard || got.Ledger.LabelColumns != want.Ledger.LabelColumns {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
