package core

// RowKind classifies a row in a disclosure outline. A parent row owns the
// contiguous run of minor-item and sub-category rows that follows it; the run
// ends at the first row of any other kind.
type RowKind int

const (
	RowPlain RowKind = iota
	RowParent
	RowMinorItem
	RowSubCategory
)

// DiscloseState is a parent row's open/closed state.
type DiscloseState int

const (
	Closed DiscloseState = iota
	Open
)

// Target names the control an activation landed on within a row.
type Target int

const (
	TargetRow Target = iota
	TargetCaret
	TargetIcon
	TargetButton
)

// Guard decides whether an activation on a given control may toggle the row.
type Guard func(Target) bool

// GuardCaretOnly ignores activations on icons other than the expand caret.
// Row-body and caret activations toggle; embedded buttons are not this
// guard's concern.
func GuardCaretOnly(t Target) bool {
	return t != TargetIcon
}

// GuardIgnoreButtons ignores activations on embedded buttons only.
func GuardIgnoreButtons(t Target) bool {
	return t != TargetButton
}

// GuardByName resolves a configured guard name, defaulting to GuardCaretOnly.
func GuardByName(name string) Guard {
	if name == "ignore-buttons" {
		return GuardIgnoreButtons
	}
	return GuardCaretOnly
}

// OutlineRow is one row of a disclosure outline. Visible is owned by the
// outline: dependent rows track their governing parent's state, every other
// kind is always visible.
type OutlineRow struct {
	ID      string
	Kind    RowKind
	Label   string
	Cells   []string
	State   DiscloseState
	Visible bool
}

// Outline is the row-disclosure state machine. Dependent visibility is
// derived from parent state on every accepted toggle, never re-read from the
// rendered output.
type Outline struct {
	rows  []OutlineRow
	guard Guard
}

func NewOutline(rows []OutlineRow, guard Guard) *Outline {
	if guard == nil {
		guard = GuardCaretOnly
	}
	o := &Outline{rows: append([]OutlineRow(nil), rows...), guard: guard}
	o.normalize()
	return o
}

// normalize makes every dependent row's visibility equal its parent's state
// and everything else visible. Dependent rows with no preceding parent stay
// hidden.
func (o *Outline) normalize() {
	parentOpen := false
	hasParent := false
	for i := range o.rows {
		switch o.rows[i].Kind {
		case RowParent:
			hasParent = true
			parentOpen = o.rows[i].State == Open
			o.rows[i].Visible = true
		case RowMinorItem, RowSubCategory:
			o.rows[i].Visible = hasParent && parentOpen
		default:
			hasParent = false
			o.rows[i].Visible = true
		}
	}
}

func (o *Outline) Len() int { return len(o.rows) }

// Row returns a copy of the row at index.
func (o *Outline) Row(index int) (OutlineRow, bool) {
	if index < 0 || index >= len(o.rows) {
		return OutlineRow{}, false
	}
	return o.rows[index], true
}

// IsOpen reports whether the parent row at index is open.
func (o *Outline) IsOpen(index int) bool {
	if index < 0 || index >= len(o.rows) {
		return false
	}
	return o.rows[index].Kind == RowParent && o.rows[index].State == Open
}

// Toggle flips the parent row at index and sets every row in its dependent
// run visible iff the parent is now open. Activations rejected by the guard,
// out-of-range indexes, and non-parent rows change nothing. Reports whether
// state changed.
func (o *Outline) Toggle(index int, target Target) bool {
	if index < 0 || index >= len(o.rows) {
		return false
	}
	if o.rows[index].Kind != RowParent {
		return false
	}
	if !o.guard(target) {
		return false
	}
	if o.rows[index].State == Open {
		o.rows[index].State = Closed
	} else {
		o.rows[index].State = Open
	}
	nowOpen := o.rows[index].State == Open
	for i := index + 1; i < len(o.rows); i++ {
		if o.rows[i].Kind != RowMinorItem && o.rows[i].Kind != RowSubCategory {
			break
		}
		o.rows[i].Visible = nowOpen
	}
	return true
}

// RunLength counts the dependent rows governed by the parent at index.
func (o *Outline) RunLength(index int) int {
	if index < 0 || index >= len(o.rows) || o.rows[index].Kind != RowParent {
		return 0
	}
	n := 0
	for i := index + 1; i < len(o.rows); i++ {
		if o.rows[i].Kind != RowMinorItem && o.rows[i].Kind != RowSubCategory {
			break
		}
		n++
	}
	return n
}

// VisibleRows returns the rows to render, in document order, paired with
// their index into the full outline.
func (o *Outline) VisibleRows() []IndexedRow {
	out := make([]IndexedRow, 0, len(o.rows))
	for i, r := range o.rows {
		if !r.Visible {
			continue
		}
		out = append(out, IndexedRow{Index: i, Row: r})
	}
	return out
}

type IndexedRow struct {
	Index int
	Row   OutlineRow
}
