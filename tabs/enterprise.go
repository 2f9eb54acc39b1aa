package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/widgets"
)

type EnterpriseTab struct {
	host core.PaneHost
}

func NewEnterpriseTab(outline *core.Outline) *EnterpriseTab {
	return &EnterpriseTab{host: core.NewPaneHost(
		NewOutlinePane("outline", "Enterprise Categories", "pane:enterprise:outline", 'o', true, outline),
		core.NewStaticPane("detail", "Detail", "pane:enterprise:detail", 'd', true,
			"Select a category row.\nenter expands or collapses,\na runs the row action.", 10),
	)}
}

func (t *EnterpriseTab) ID() string              { return "enterprise" }
func (t *EnterpriseTab) Title() string           { return "Enterprise" }
func (t *EnterpriseTab) Scope() string           { return t.host.Scope() }
func (t *EnterpriseTab) ActivePaneTitle() string { return t.host.ActivePaneTitle() }
func (t *EnterpriseTab) JumpTargets() []core.JumpTarget {
	return t.host.JumpTargets()
}
func (t *EnterpriseTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	return t.host.JumpToTarget(m, key)
}
func (t *EnterpriseTab) InitTab(m *core.Model) tea.Cmd {
	_ = m
	return t.host.Init()
}
func (t *EnterpriseTab) HandlePaneKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	return t.host.HandlePaneKey(m, msg)
}
func (t *EnterpriseTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	return t.host.UpdateActive(m, msg)
}
func (t *EnterpriseTab) Build(m *core.Model) widgets.Widget {
	return widgets.HStack{
		Widgets: []widgets.Widget{t.host.BuildPane("outline", m), t.host.BuildPane("detail", m)},
		Ratios:  []float64{0.68, 0.32},
		Gap:     1,
	}
}
