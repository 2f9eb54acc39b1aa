package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerdesk/core"
)

func jumpTargets() []core.JumpTarget {
	return []core.JumpTarget{
		{Key: "o", Label: "Categories"},
		{Key: "D", Label: "Detail"},
		{Key: "", Label: "Broken"},
	}
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestJumpPickerDirectKeySelects(t *testing.T) {
	s := NewJumpPickerScreen(jumpTargets())
	_, cmd, pop := s.Update(keyRunes('o'))
	if !pop {
		t.Fatalf("matching key closes the picker")
	}
	msg, ok := cmd().(core.JumpTargetSelectedMsg)
	if !ok || msg.Key != "o" {
		t.Fatalf("unexpected selection: %#v", msg)
	}
}

func TestJumpPickerKeysAreCaseNormalized(t *testing.T) {
	s := NewJumpPickerScreen(jumpTargets())
	_, cmd, pop := s.Update(keyRunes('d'))
	if !pop || cmd == nil {
		t.Fatalf("upper-case target key should match lower-case press")
	}
	if msg := cmd().(core.JumpTargetSelectedMsg); msg.Key != "d" {
		t.Fatalf("key should be normalized, got %q", msg.Key)
	}
}

func TestJumpPickerEscCancels(t *testing.T) {
	s := NewJumpPickerScreen(jumpTargets())
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !pop || cmd != nil {
		t.Fatalf("esc closes without selecting")
	}
}

func TestJumpPickerEnterSelectsCursorRow(t *testing.T) {
	s := NewJumpPickerScreen(jumpTargets())
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatalf("enter selects the row under the cursor")
	}
	if msg := cmd().(core.JumpTargetSelectedMsg); msg.Key != "o" {
		t.Fatalf("first row should be selected, got %q", msg.Key)
	}
}

func TestJumpPickerDropsInvalidTargets(t *testing.T) {
	s := NewJumpPickerScreen(jumpTargets())
	if len(s.picker.Items()) != 2 {
		t.Fatalf("targets without a valid key are dropped, got %d", len(s.picker.Items()))
	}
}
