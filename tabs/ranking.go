package tabs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/internal/service"
	"ledgerdesk/widgets"
)

type RankingTab struct {
	host core.PaneHost
}

func NewRankingTab(standings []service.Standing) *RankingTab {
	sources := "Sources merged by name:\nnear-duplicate enterprise\nnames fold into one row."
	return &RankingTab{host: core.NewPaneHost(
		NewStandingsPane("standings", "Standings", "pane:ranking:standings", 's', true, standings),
		core.NewStaticPane("about", "Aggregation", "pane:ranking:about", 'g', true, sources, 10),
	)}
}

func (t *RankingTab) ID() string              { return "ranking" }
func (t *RankingTab) Title() string           { return "Ranking" }
func (t *RankingTab) Scope() string           { return t.host.Scope() }
func (t *RankingTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *RankingTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *RankingTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *RankingTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *RankingTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *RankingTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *RankingTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("standings", m), t.host.BuildPane("about", m)},
		Ratios:  []float64{0.72, 0.28},
		Gap:     1,
	}
}

// StandingsPane shows the merged standings in a scrollable table.
type StandingsPane struct {
	id    string
	title string
	scope string
	jump  byte
	focus bool
	table table.Model
}

func NewStandingsPane(id, title, scope string, jumpKey byte, focusable bool, standings []service.Standing) *StandingsPane {
	cols := []table.Column{
		{Title: "Enterprise", Width: 26},
		{Title: "Best Rank", Width: 9},
		{Title: "Score", Width: 10},
		{Title: "Sources", Width: 7},
	}
	rows := make([]table.Row, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, table.Row{
			s.Enterprise,
			fmt.Sprintf("%d", s.BestRank),
			fmt.Sprintf("%.0f", s.TotalScore),
			fmt.Sprintf("%d", s.Sources),
		})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true), table.WithHeight(8))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	return &StandingsPane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, table: t}
}

func (p *StandingsPane) ID() string      { return p.id }
func (p *StandingsPane) Title() string   { return p.title }
func (p *StandingsPane) Scope() string   { return p.scope }
func (p *StandingsPane) JumpKey() byte   { return p.jump }
func (p *StandingsPane) Focusable() bool { return p.focus }
func (p *StandingsPane) Init() tea.Cmd   { return nil }

func (p *StandingsPane) Update(msg tea.Msg) (core.Pane, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *StandingsPane) View(width, height int, selected, focused bool) string {
	innerW := width - 4
	if innerW < 12 {
		innerW = 12
	}
	innerH := height - 4
	if innerH < 3 {
		innerH = 3
	}
	p.table.SetWidth(innerW)
	p.table.SetHeight(innerH)
	content := p.table.View()
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func (p *StandingsPane) OnSelect() tea.Cmd   { return nil }
func (p *StandingsPane) OnDeselect() tea.Cmd { return nil }
func (p *StandingsPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *StandingsPane) OnBlur() tea.Cmd { return nil }
