package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testHost() PaneHost {
	return NewPaneHost(
		NewStaticPane("one", "One", "pane:t:one", 'o', true, "first", 10),
		NewStaticPane("two", "Two", "pane:t:two", 't', true, "second", 10),
		NewStaticPane("aux", "Aux", "pane:t:aux", 'x', false, "third", 10),
	)
}

func TestPaneHostMoveWrapsSelection(t *testing.T) {
	h := testHost()
	m := &Model{}
	handled, _ := h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if !handled {
		t.Fatalf("right should move selection")
	}
	if h.ActivePaneTitle() != "Two" {
		t.Fatalf("selected = %q, want Two", h.ActivePaneTitle())
	}
	h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRight})
	h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if h.ActivePaneTitle() != "One" {
		t.Fatalf("selection wraps, got %q", h.ActivePaneTitle())
	}
}

func TestPaneHostFocusAndEscape(t *testing.T) {
	h := testHost()
	m := &Model{}
	handled, _ := h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !handled {
		t.Fatalf("enter focuses the selected pane")
	}
	if h.Scope() != "pane:t:one" {
		t.Fatalf("focused pane owns the scope, got %q", h.Scope())
	}

	// while focused, navigation keys pass through to the pane
	handled, _ = h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if handled {
		t.Fatalf("focused host must not steal navigation keys")
	}

	handled, _ = h.HandlePaneKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("esc unfocuses")
	}
	if h.activeIndex() != 0 || h.focused != -1 {
		t.Fatalf("after esc the pane stays selected but unfocused")
	}
}

func TestPaneHostJumpTargetsSkipUnfocusable(t *testing.T) {
	h := testHost()
	targets := h.JumpTargets()
	if len(targets) != 2 {
		t.Fatalf("only focusable panes are jump targets, got %d", len(targets))
	}
	for _, target := range targets {
		if target.Key == "x" {
			t.Fatalf("unfocusable pane leaked into jump targets")
		}
	}
}

func TestPaneHostJumpToTarget(t *testing.T) {
	h := testHost()
	m := &Model{}
	handled, _ := h.JumpToTarget(m, "T")
	if !handled {
		t.Fatalf("jump key is case-insensitive")
	}
	if h.Scope() != "pane:t:two" {
		t.Fatalf("jump selects and focuses the pane, got %q", h.Scope())
	}
	if handled, _ := h.JumpToTarget(m, "z"); handled {
		t.Fatalf("unknown jump key is not handled")
	}
	if handled, _ := h.JumpToTarget(m, "x"); handled {
		t.Fatalf("unfocusable pane cannot be jumped to")
	}
}

func TestPaneHostDuplicateJumpKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate jump keys must panic at construction")
		}
	}()
	NewPaneHost(
		NewStaticPane("a", "A", "pane:a", 'd', true, "", 5),
		NewStaticPane("b", "B", "pane:b", 'd', true, "", 5),
	)
}
