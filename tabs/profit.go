package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/ledger"
	"ledgerdesk/widgets"
)

// ProfitTab owns the software/adjustment/profit triple. Activating the tab
// recalculates the profit sheet before the next render.
type ProfitTab struct {
	host   core.PaneHost
	triple *ledger.Triple
}

func NewProfitTab(triple *ledger.Triple) *ProfitTab {
	return &ProfitTab{
		host: core.NewPaneHost(
			NewSheetPane("software", "Software Revenue", "pane:profit:software", 's', true, triple.Software),
			NewSheetPane("adjustment", "Adjustments", "pane:profit:adjustment", 'a', true, triple.Adjustment),
			NewSheetPane("profit", "Profit", "pane:profit:profit", 'p', true, triple.Profit),
		),
		triple: triple,
	}
}

func (t *ProfitTab) ID() string              { return "profit" }
func (t *ProfitTab) Title() string           { return "Profit" }
func (t *ProfitTab) Scope() string           { return t.host.Scope() }
func (t *ProfitTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }

// OnActivate re-derives every profit cell from the current source sheets.
func (t *ProfitTab) OnActivate(m *core.Model) tea.Cmd {
	_ = m
	t.triple.Recalculate()
	return core.StatusCmd("Profit sheet recalculated")
}

func (t *ProfitTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *ProfitTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *ProfitTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *ProfitTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *ProfitTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *ProfitTab) Build(m *core.Model) widgets.Widget {
	top := widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("software", m), t.host.BuildPane("adjustment", m)},
		Ratios:  []float64{0.5, 0.5},
		Gap:     1,
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{top, t.host.BuildPane("profit", m)},
		Ratios:  []float64{0.5, 0.5},
	}
}

// SheetPane renders one ledger sheet as an aligned table.
type SheetPane struct {
	id    string
	title string
	scope string
	jump  byte
	focus bool
	sheet *ledger.Sheet
}

func NewSheetPane(id, title, scope string, jumpKey byte, focusable bool, sheet *ledger.Sheet) *SheetPane {
	return &SheetPane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, sheet: sheet}
}

func (p *SheetPane) ID() string      { return p.id }
func (p *SheetPane) Title() string   { return p.title }
func (p *SheetPane) Scope() string   { return p.scope }
func (p *SheetPane) JumpKey() byte   { return p.jump }
func (p *SheetPane) Focusable() bool { return p.focus }
func (p *SheetPane) Init() tea.Cmd   { return nil }
func (p *SheetPane) Update(msg tea.Msg) (core.Pane, tea.Cmd) {
	return p, nil
}
func (p *SheetPane) View(width, height int, selected, focused bool) string {
	innerW := width - 4
	if innerW < 12 {
		innerW = 12
	}
	innerH := height - 2
	if innerH < 2 {
		innerH = 2
	}
	table := widgets.Table{Headers: p.sheet.Columns, Rows: p.sheet.Rows}
	content := table.Render(innerW, innerH)
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}
func (p *SheetPane) OnSelect() tea.Cmd   { return nil }
func (p *SheetPane) OnDeselect() tea.Cmd { return nil }
func (p *SheetPane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *SheetPane) OnBlur() tea.Cmd { return nil }
