package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/internal/config"
	"ledgerdesk/internal/database"
	"ledgerdesk/internal/database/repository"
	"ledgerdesk/internal/service"
	"ledgerdesk/tabs"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	// repositories
	entRepo := repository.NewEnterpriseRepo(db)
	acctRepo := repository.NewAccountRepo(db)
	rankRepo := repository.NewRankingRepo(db)
	ledgerRepo := repository.NewLedgerRepo(db)

	entRows, err := entRepo.List(ctx)
	if err != nil {
		log.Fatalf("load enterprises: %v", err)
	}
	outline := core.NewOutline(outlineRows(entRows), core.GuardByName(cfg.UI.DisclosureGuard))

	accounts, err := acctRepo.List(ctx)
	if err != nil {
		log.Fatalf("load accounts: %v", err)
	}

	ranker := &service.Ranker{Rankings: rankRepo, MaxDistance: 2}
	standings, err := ranker.Standings(ctx)
	if err != nil {
		log.Fatalf("load standings: %v", err)
	}

	loader := &service.LedgerLoader{Figures: ledgerRepo, LabelColumns: cfg.Ledger.LabelColumns}
	triple, err := loader.LoadTriple(ctx)
	if err != nil {
		log.Fatalf("load ledger: %v", err)
	}

	figures, err := ledgerRepo.List(ctx)
	if err != nil {
		log.Fatalf("load figures: %v", err)
	}

	appTabs := tabs.Tabs(tabs.Inputs{
		Outline:   outline,
		Accounts:  accounts,
		Standings: standings,
		Triple:    triple,
		Config:    cfg,
	})

	m := core.NewModel(
		appTabs,
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		tabs.Menu(),
		db,
		core.AppData{
			Enterprises: len(entRows),
			Accounts:    len(accounts),
			Rankings:    len(standings),
			Figures:     len(figures),
		},
	)
	tabs.ConfigureModel(&m)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func outlineRows(rows []repository.EnterpriseRow) []core.OutlineRow {
	out := make([]core.OutlineRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, core.OutlineRow{
			ID:    r.ID,
			Kind:  rowKind(r.Kind),
			Label: r.Label,
			Cells: []string{r.Detail},
		})
	}
	return out
}

func rowKind(kind string) core.RowKind {
	switch kind {
	case "parent":
		return core.RowParent
	case "minor-item":
		return core.RowMinorItem
	case "sub-category":
		return core.RowSubCategory
	default:
		return core.RowPlain
	}
}
