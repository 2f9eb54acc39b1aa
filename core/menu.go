package core

// MenuAction is what a submenu entry does when selected. Exactly one field
// is meaningful: a non-negative TabIndex switches tabs, otherwise CommandID
// is executed.
type MenuAction struct {
	TabIndex  int
	CommandID string
}

type MenuEntry struct {
	Label  string
	Action MenuAction
}

type MenuItem struct {
	Label   string
	Entries []MenuEntry
}

// MenuBar holds the header dropdown state: a fixed set of top-level items,
// at most one of which has its submenu open at any time.
type MenuBar struct {
	items  []MenuItem
	open   int
	cursor int
}

func NewMenuBar(items []MenuItem) MenuBar {
	return MenuBar{items: items, open: -1}
}

func (b *MenuBar) Items() []MenuItem { return b.items }

// OpenIndex returns the open item index, or -1 when all submenus are closed.
func (b *MenuBar) OpenIndex() int { return b.open }

func (b *MenuBar) Cursor() int { return b.cursor }

// ToggleAt closes every other submenu, then toggles the submenu at index.
func (b *MenuBar) ToggleAt(index int) {
	if index < 0 || index >= len(b.items) {
		return
	}
	if b.open == index {
		b.open = -1
		return
	}
	b.open = index
	b.cursor = 0
}

// CloseAll closes every submenu. This is the "click outside" path.
func (b *MenuBar) CloseAll() {
	b.open = -1
	b.cursor = 0
}

// MoveItem shifts the open submenu to an adjacent item, keeping the
// one-open-at-a-time invariant.
func (b *MenuBar) MoveItem(delta int) {
	if b.open < 0 || len(b.items) == 0 {
		return
	}
	b.open = (b.open + delta + len(b.items)) % len(b.items)
	b.cursor = 0
}

func (b *MenuBar) MoveCursor(delta int) {
	if b.open < 0 || b.open >= len(b.items) {
		return
	}
	n := len(b.items[b.open].Entries)
	if n == 0 {
		return
	}
	b.cursor = (b.cursor + delta + n) % n
}

// Select returns the entry under the cursor and closes all submenus.
func (b *MenuBar) Select() (MenuEntry, bool) {
	if b.open < 0 || b.open >= len(b.items) {
		return MenuEntry{}, false
	}
	entries := b.items[b.open].Entries
	if b.cursor < 0 || b.cursor >= len(entries) {
		b.CloseAll()
		return MenuEntry{}, false
	}
	entry := entries[b.cursor]
	b.CloseAll()
	return entry, true
}
