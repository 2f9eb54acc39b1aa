package tabs

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/internal/config"
	"ledgerdesk/internal/database/repository"
	"ledgerdesk/widgets"
)

type AccountsTab struct {
	host core.PaneHost
}

func NewAccountsTab(accounts []repository.Account, cfg config.Config) *AccountsTab {
	lines := make([]string, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, fmt.Sprintf("%-12s %-12s %s", a.Name, a.Department, a.Role))
	}
	if len(lines) == 0 {
		lines = append(lines, "No accounts")
	}
	prefs := strings.Join([]string{
		"currency: " + cfg.UI.CurrencySymbol,
		"disclosure guard: " + cfg.UI.DisclosureGuard,
		fmt.Sprintf("label columns: %d", cfg.Ledger.LabelColumns),
		"database: " + cfg.Database.Path,
	}, "\n")
	return &AccountsTab{host: core.NewPaneHost(
		core.NewStaticPane("list", "Accounts", "pane:accounts:list", 'l', true, strings.Join(lines, "\n"), 12),
		core.NewStaticPane("prefs", "Preferences", "pane:accounts:prefs", 'p', true, prefs, 10),
	)}
}

func (t *AccountsTab) ID() string              { return "accounts" }
func (t *AccountsTab) Title() string           { return "Accounts" }
func (t *AccountsTab) Scope() string           { return t.host.Scope() }
func (t *AccountsTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *AccountsTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *AccountsTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *AccountsTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *AccountsTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *AccountsTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *AccountsTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("list", m), t.host.BuildPane("prefs", m)},
		Ratios:  []float64{0.6, 0.4},
		Gap:     1,
	}
}
