package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
	"ledgerdesk/internal/config"
	"ledgerdesk/ledger"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testOutline(guard core.Guard) *core.Outline {
	return core.NewOutline([]core.OutlineRow{
		{ID: "p1", Kind: core.RowParent, Label: "Software Division"},
		{ID: "m1", Kind: core.RowMinorItem, Label: "Package licenses"},
		{ID: "m2", Kind: core.RowMinorItem, Label: "Custom development"},
		{ID: "x1", Kind: core.RowPlain, Label: "Corporate overhead"},
	}, guard)
}

func TestOutlinePaneEnterTogglesParent(t *testing.T) {
	outline := testOutline(nil)
	pane := NewOutlinePane("outline", "Categories", "pane:enterprise:outline", 'o', true, outline)

	_, cmd := pane.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !outline.IsOpen(0) {
		t.Fatalf("enter on a parent row should expand it")
	}
	if cmd == nil {
		t.Fatalf("toggle should report a status")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || !strings.Contains(msg.Text, "Expanded") {
		t.Fatalf("unexpected status: %#v", msg)
	}

	pane.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outline.IsOpen(0) {
		t.Fatalf("second enter collapses")
	}
}

func TestOutlinePaneCursorWalksVisibleRowsOnly(t *testing.T) {
	outline := testOutline(nil)
	pane := NewOutlinePane("outline", "Categories", "pane:enterprise:outline", 'o', true, outline)

	// closed parent: visible rows are parent and plain row only
	pane.Update(keyRunes('j'))
	_, cmd := pane.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if outline.IsOpen(0) {
		t.Fatalf("cursor should sit on the plain row, which cannot toggle")
	}
	if cmd != nil {
		t.Fatalf("rejected toggle yields no status")
	}

	pane.Update(keyRunes('k'))
	pane.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !outline.IsOpen(0) {
		t.Fatalf("cursor should be back on the parent")
	}
	// expanded: the next row down is now the first minor item
	pane.Update(keyRunes('j'))
	visible := outline.VisibleRows()
	if visible[pane.cursor].Row.ID != "m1" {
		t.Fatalf("cursor at %q, want m1", visible[pane.cursor].Row.ID)
	}
}

func TestOutlinePaneRowActionUnderCaretOnlyGuard(t *testing.T) {
	outline := testOutline(core.GuardCaretOnly)
	pane := NewOutlinePane("outline", "Categories", "pane:enterprise:outline", 'o', true, outline)

	_, cmd := pane.Update(keyRunes('a'))
	if !outline.IsOpen(0) {
		t.Fatalf("caret-only guard lets button activations toggle")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || !strings.Contains(msg.Text, "Expanded") {
		t.Fatalf("unexpected status: %#v", msg)
	}
}

func TestOutlinePaneRowActionUnderIgnoreButtonsGuard(t *testing.T) {
	outline := testOutline(core.GuardIgnoreButtons)
	pane := NewOutlinePane("outline", "Categories", "pane:enterprise:outline", 'o', true, outline)

	_, cmd := pane.Update(keyRunes('a'))
	if outline.IsOpen(0) {
		t.Fatalf("ignore-buttons guard must not toggle on button activation")
	}
	if msg, ok := cmd().(core.StatusMsg); !ok || !strings.Contains(msg.Text, "Row action") {
		t.Fatalf("button activation still runs the row action, got %#v", msg)
	}
}

func testTriple() *ledger.Triple {
	return &ledger.Triple{
		Software: &ledger.Sheet{
			Columns: []string{"Item", "Q1"},
			Rows:    [][]string{{"Licenses", "1,000"}},
		},
		Adjustment: &ledger.Sheet{
			Columns: []string{"Item", "Q1"},
			Rows:    [][]string{{"Licenses", "200"}},
		},
		Profit: &ledger.Sheet{
			Columns: []string{"Item", "Q1"},
			Rows:    [][]string{{"Licenses", ""}},
		},
		LabelColumns: 1,
	}
}

func TestProfitTabActivationRecalculates(t *testing.T) {
	triple := testTriple()
	tab := NewProfitTab(triple)
	m := &core.Model{}

	cmd := tab.OnActivate(m)
	if got, _ := triple.Profit.Cell(0, 1); got != "1,200" {
		t.Fatalf("activation should fill profit cells, got %q", got)
	}
	if cmd == nil {
		t.Fatalf("activation reports a status")
	}

	// edit a source and re-activate: stale profit is overwritten
	triple.Software.SetCell(0, 1, "2,000")
	tab.OnActivate(m)
	if got, _ := triple.Profit.Cell(0, 1); got != "2,200" {
		t.Fatalf("re-activation should recompute, got %q", got)
	}
}

func TestTabsOrderMatchesMenu(t *testing.T) {
	in := Inputs{
		Outline: testOutline(nil),
		Triple:  testTriple(),
		Config:  config.Config{},
	}
	tabs := Tabs(in)
	wantIDs := []string{"enterprise", "accounts", "ranking", "profit"}
	if len(tabs) != len(wantIDs) {
		t.Fatalf("tab count = %d, want %d", len(tabs), len(wantIDs))
	}
	for i, id := range wantIDs {
		if tabs[i].ID() != id {
			t.Fatalf("tab %d = %q, want %q", i, tabs[i].ID(), id)
		}
	}

	menu := Menu()
	view := menu.Items()[0]
	if len(view.Entries) != len(tabs) {
		t.Fatalf("view submenu must cover every tab")
	}
	for i, entry := range view.Entries {
		if entry.Action.TabIndex != i {
			t.Fatalf("view entry %d points at tab %d", i, entry.Action.TabIndex)
		}
	}
	for _, entry := range menu.Items()[1].Entries {
		if entry.Action.TabIndex >= 0 || entry.Action.CommandID == "" {
			t.Fatalf("action entries carry command IDs, got %+v", entry)
		}
	}
}
