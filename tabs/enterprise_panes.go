package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/widgets"
)

// OutlinePane renders the disclosure outline and maps keys onto outline
// activations. The cursor walks visible rows only; hidden dependents are
// skipped by construction.
type OutlinePane struct {
	id      string
	title   string
	scope   string
	jump    byte
	focus   bool
	outline *core.Outline
	cursor  int
}

func NewOutlinePane(id, title, scope string, jumpKey byte, focusable bool, outline *core.Outline) *OutlinePane {
	return &OutlinePane{id: id, title: title, scope: scope, jump: jumpKey, focus: focusable, outline: outline}
}

func (p *OutlinePane) ID() string      { return p.id }
func (p *OutlinePane) Title() string   { return p.title }
func (p *OutlinePane) Scope() string   { return p.scope }
func (p *OutlinePane) JumpKey() byte   { return p.jump }
func (p *OutlinePane) Focusable() bool { return p.focus }
func (p *OutlinePane) Init() tea.Cmd   { return nil }

func (p *OutlinePane) Update(msg tea.Msg) (core.Pane, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	visible := p.outline.VisibleRows()
	if len(visible) == 0 {
		return p, nil
	}
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
	switch keyMsg.String() {
	case "j", "down":
		if p.cursor < len(visible)-1 {
			p.cursor++
		}
		return p, nil
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil
	case "enter":
		// The expand caret is the row's toggle control.
		return p, p.toggle(visible[p.cursor], core.TargetCaret)
	case "a":
		// Embedded row action; whether it also toggles is the guard's call.
		row := visible[p.cursor]
		cmd := p.toggle(row, core.TargetButton)
		if cmd != nil {
			return p, cmd
		}
		return p, core.StatusCmd("Row action: " + row.Row.Label)
	default:
		return p, nil
	}
}

func (p *OutlinePane) toggle(row core.IndexedRow, target core.Target) tea.Cmd {
	if !p.outline.Toggle(row.Index, target) {
		return nil
	}
	if p.outline.IsOpen(row.Index) {
		return core.StatusCmd("Expanded " + row.Row.Label)
	}
	return core.StatusCmd("Collapsed " + row.Row.Label)
}

func (p *OutlinePane) View(width, height int, selected, focused bool) string {
	visible := p.outline.VisibleRows()
	lines := make([]string, 0, len(visible))
	for i, row := range visible {
		prefix := "  "
		if i == p.cursor {
			prefix = "> "
		}
		lines = append(lines, prefix+outlineRowLabel(row.Row))
	}
	if len(lines) == 0 {
		lines = append(lines, "No categories")
	}
	content := strings.Join(lines, "\n")
	if focused {
		content += "\n\nj/k move · enter expand/collapse · a row action"
	}
	return widgets.Pane{Title: p.title, Height: height, Content: content, Selected: selected, Focused: focused}.Render(width, height)
}

func outlineRowLabel(row core.OutlineRow) string {
	switch row.Kind {
	case core.RowParent:
		marker := "▸ "
		if row.State == core.Open {
			marker = "▾ "
		}
		return marker + row.Label
	case core.RowMinorItem:
		return "    · " + row.Label
	case core.RowSubCategory:
		return "    » " + row.Label
	default:
		return "  " + row.Label
	}
}

func (p *OutlinePane) OnSelect() tea.Cmd   { return nil }
func (p *OutlinePane) OnDeselect() tea.Cmd { return nil }
func (p *OutlinePane) OnFocus() tea.Cmd {
	return core.StatusCmd("Focused pane: " + p.title)
}
func (p *OutlinePane) OnBlur() tea.Cmd { return nil }
