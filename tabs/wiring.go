package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/internal/config"
	"ledgerdesk/internal/database/repository"
	"ledgerdesk/internal/service"
	"ledgerdesk/ledger"
	"ledgerdesk/screens"
)

// Inputs carries the data loaded at startup that the tabs render.
type Inputs struct {
	Outline   *core.Outline
	Accounts  []repository.Account
	Standings []service.Standing
	Triple    *ledger.Triple
	Config    config.Config
}

func Tabs(in Inputs) []core.Tab {
	return []core.Tab{
		NewEnterpriseTab(in.Outline),
		NewAccountsTab(in.Accounts, in.Config),
		NewRankingTab(in.Standings),
		NewProfitTab(in.Triple),
	}
}

// Menu builds the header dropdown: navigation plus console actions. At most
// one submenu opens at a time; that policy lives in core.MenuBar.
func Menu() core.MenuBar {
	return core.NewMenuBar([]core.MenuItem{
		{Label: "View", Entries: []core.MenuEntry{
			{Label: "Enterprise", Action: core.MenuAction{TabIndex: 0}},
			{Label: "Accounts", Action: core.MenuAction{TabIndex: 1}},
			{Label: "Ranking", Action: core.MenuAction{TabIndex: 2}},
			{Label: "Profit", Action: core.MenuAction{TabIndex: 3}},
		}},
		{Label: "Actions", Entries: []core.MenuEntry{
			{Label: "Recalculate profit", Action: core.MenuAction{TabIndex: -1, CommandID: "recalculate-profit"}},
			{Label: "Quit", Action: core.MenuAction{TabIndex: -1, CommandID: "quit"}},
		}},
	})
}

func ConfigureModel(m *core.Model) {
	if m == nil {
		return
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(model *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}

	RegisterCommands(m.CommandRegistry())
}

func RegisterCommands(reg *core.CommandRegistry) {
	tabCommands := []struct {
		id, name, desc string
		index          int
	}{
		{"switch-enterprise", "Switch to enterprise", "Activate enterprise tab", 0},
		{"switch-accounts", "Switch to accounts", "Activate accounts tab", 1},
		{"switch-ranking", "Switch to ranking", "Activate ranking tab", 2},
		{"switch-profit", "Switch to profit", "Activate profit tab", 3},
	}
	for _, c := range tabCommands {
		index := c.index
		reg.Register(core.Command{
			ID:          c.id,
			Name:        c.name,
			Description: c.desc,
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return m.SwitchTab(index)
			},
		})
	}
	reg.Register(core.Command{
		ID:          "recalculate-profit",
		Name:        "Recalculate profit",
		Description: "Switch to the profit tab and re-derive the profit sheet",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.SwitchTab(3)
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit the console",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
