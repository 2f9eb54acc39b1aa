package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopedBindings(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "toggle-row", Scopes: []string{"pane:enterprise:outline"}},
	})

	if !reg.IsAction(keyRunes('q'), "quit", "tab:profit") {
		t.Fatalf("wildcard scope should match any scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "toggle-row", "pane:enterprise:outline") {
		t.Fatalf("scoped binding should match its scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "toggle-row", "tab:profit") {
		t.Fatalf("scoped binding must not match other scopes")
	}
	if reg.IsAction(keyRunes('x'), "quit", "tab:profit") {
		t.Fatalf("unbound key must not match")
	}
}

func TestKeyRegistryRegisterAppends(t *testing.T) {
	reg := NewKeyRegistry(nil)
	reg.Register(KeyBinding{Keys: []string{"m"}, Action: "menu"})
	if !reg.IsAction(keyRunes('m'), "menu", "anything") {
		t.Fatalf("empty scope list means every scope")
	}
}

func TestDefaultBindingsCoverCoreActions(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, action := range []string{"quit", "jump", "menu", "open-command-palette", "switch-tab-1", "switch-tab-4"} {
		found := false
		for _, b := range reg.BindingsForScope("tab:enterprise") {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("default bindings missing action %q", action)
		}
	}
}
