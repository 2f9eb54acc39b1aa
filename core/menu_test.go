package core

import "testing"

func sampleMenu() MenuBar {
	return NewMenuBar([]MenuItem{
		{Label: "View", Entries: []MenuEntry{
			{Label: "Enterprise", Action: MenuAction{TabIndex: 0}},
			{Label: "Profit", Action: MenuAction{TabIndex: 3}},
		}},
		{Label: "Actions", Entries: []MenuEntry{
			{Label: "Quit", Action: MenuAction{TabIndex: -1, CommandID: "quit"}},
		}},
	})
}

func TestMenuAtMostOneOpen(t *testing.T) {
	b := sampleMenu()
	if b.OpenIndex() != -1 {
		t.Fatalf("menu starts closed")
	}
	b.ToggleAt(0)
	if b.OpenIndex() != 0 {
		t.Fatalf("first submenu should open")
	}
	b.ToggleAt(1)
	if b.OpenIndex() != 1 {
		t.Fatalf("opening second submenu must close the first")
	}
}

func TestMenuToggleSameItemCloses(t *testing.T) {
	b := sampleMenu()
	b.ToggleAt(1)
	b.ToggleAt(1)
	if b.OpenIndex() != -1 {
		t.Fatalf("toggling the open item closes it")
	}
}

func TestMenuCloseAll(t *testing.T) {
	b := sampleMenu()
	b.ToggleAt(0)
	b.MoveCursor(1)
	b.CloseAll()
	if b.OpenIndex() != -1 || b.Cursor() != 0 {
		t.Fatalf("close-all resets open item and cursor")
	}
}

func TestMenuMoveItemWrapsAndResetsCursor(t *testing.T) {
	b := sampleMenu()
	b.ToggleAt(0)
	b.MoveCursor(1)
	b.MoveItem(1)
	if b.OpenIndex() != 1 || b.Cursor() != 0 {
		t.Fatalf("moving to next item opens it with cursor reset, got open=%d cursor=%d", b.OpenIndex(), b.Cursor())
	}
	b.MoveItem(1)
	if b.OpenIndex() != 0 {
		t.Fatalf("item movement wraps")
	}
	closed := sampleMenu()
	closed.MoveItem(1)
	if closed.OpenIndex() != -1 {
		t.Fatalf("item movement is a no-op while closed")
	}
}

func TestMenuSelectClosesAndReturnsEntry(t *testing.T) {
	b := sampleMenu()
	b.ToggleAt(0)
	b.MoveCursor(1)
	entry, ok := b.Select()
	if !ok {
		t.Fatalf("select under cursor should succeed")
	}
	if entry.Action.TabIndex != 3 {
		t.Fatalf("selected entry tab index = %d, want 3", entry.Action.TabIndex)
	}
	if b.OpenIndex() != -1 {
		t.Fatalf("select closes all submenus")
	}
	if _, ok := b.Select(); ok {
		t.Fatalf("select with no open submenu fails")
	}
}

func TestMenuCursorWraps(t *testing.T) {
	b := sampleMenu()
	b.ToggleAt(0)
	b.MoveCursor(-1)
	if b.Cursor() != 1 {
		t.Fatalf("cursor wraps upward, got %d", b.Cursor())
	}
	b.MoveCursor(1)
	if b.Cursor() != 0 {
		t.Fatalf("cursor wraps downward, got %d", b.Cursor())
	}
}
