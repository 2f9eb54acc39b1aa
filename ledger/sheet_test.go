package ledger

import "testing"

func makeTriple() *Triple {
	return &Triple{
		Software: &Sheet{
			Name:    "Software Revenue",
			Columns: []string{"Item", "Q1", "Q2"},
			Rows: [][]string{
				{"Package licenses", "1,000", "1,350"},
				{"Custom development", "3,400", ""},
			},
		},
		Adjustment: &Sheet{
			Name:    "Adjustments",
			Columns: []string{"Item", "Q1", "Q2"},
			Rows: [][]string{
				{"Package licenses", "200", "-60"},
				{"Custom development", "", "garbage"},
			},
		},
		Profit: &Sheet{
			Name:    "Profit",
			Columns: []string{"Item", "Q1", "Q2"},
			Rows: [][]string{
				{"Package licenses", "", ""},
				{"Custom development", "stale", "stale"},
			},
		},
		LabelColumns: 1,
	}
}

func TestRecalculateSumsAndGroups(t *testing.T) {
	tr := makeTriple()
	tr.Recalculate()

	if got, _ := tr.Profit.Cell(0, 1); got != "1,200" {
		t.Fatalf("profit[0][1] = %q, want 1,200", got)
	}
	if got, _ := tr.Profit.Cell(0, 2); got != "1,290" {
		t.Fatalf("profit[0][2] = %q, want 1,290", got)
	}
}

func TestRecalculateBlankAndGarbageCountAsZero(t *testing.T) {
	tr := makeTriple()
	tr.Recalculate()

	if got, _ := tr.Profit.Cell(1, 1); got != "3,400" {
		t.Fatalf("blank adjustment counts as zero, got %q", got)
	}
	if got, _ := tr.Profit.Cell(1, 2); got != "0" {
		t.Fatalf("blank plus unparseable yields 0, got %q", got)
	}
}

func TestRecalculateOverwritesStaleValues(t *testing.T) {
	tr := makeTriple()
	tr.Recalculate()
	for j := 1; j <= 2; j++ {
		if got, _ := tr.Profit.Cell(1, j); got == "stale" {
			t.Fatalf("stale profit cell at col %d not overwritten", j)
		}
	}
}

func TestRecalculateIsIdempotent(t *testing.T) {
	tr := makeTriple()
	tr.Recalculate()
	first := make([]string, 0)
	for _, row := range tr.Profit.Rows {
		first = append(first, row...)
	}
	tr.Recalculate()
	i := 0
	for _, row := range tr.Profit.Rows {
		for _, cell := range row {
			if cell != first[i] {
				t.Fatalf("second run changed cell %d: %q -> %q", i, first[i], cell)
			}
			i++
		}
	}
}

func TestRecalculateSkipsLabelColumns(t *testing.T) {
	tr := makeTriple()
	tr.Recalculate()
	if got, _ := tr.Profit.Cell(0, 0); got != "Package licenses" {
		t.Fatalf("label column must be untouched, got %q", got)
	}

	tr = makeTriple()
	tr.LabelColumns = 2
	tr.Profit.Rows[0][1] = "keep"
	tr.Recalculate()
	if got, _ := tr.Profit.Cell(0, 1); got != "keep" {
		t.Fatalf("column inside label span must be untouched, got %q", got)
	}
	if got, _ := tr.Profit.Cell(0, 2); got != "1,290" {
		t.Fatalf("column past label span recalculates, got %q", got)
	}
}

func TestRecalculateSkipsRaggedPositions(t *testing.T) {
	tr := makeTriple()
	tr.Software.Rows[1] = tr.Software.Rows[1][:2] // drop Q2 from software
	tr.Profit.Rows[1][2] = "untouched"
	tr.Recalculate()
	if got, _ := tr.Profit.Cell(1, 2); got != "untouched" {
		t.Fatalf("position missing from a source sheet must be skipped, got %q", got)
	}
	if got, _ := tr.Profit.Cell(1, 1); got != "3,400" {
		t.Fatalf("positions present everywhere still recalculate, got %q", got)
	}
}

func TestRecalculateZeroLabelColumnsStillSkipsColumnZero(t *testing.T) {
	tr := makeTriple()
	tr.LabelColumns = 0
	tr.Recalculate()
	if got, _ := tr.Profit.Cell(0, 0); got != "Package licenses" {
		t.Fatalf("column 0 is always reserved for labels, got %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,234", 1234},
		{" 42 ", 42},
		{"-1,000", -1000},
		{"", 0},
		{"n/a", 0},
		{"3.5", 3.5},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatAmountGroupsThousands(t *testing.T) {
	if got := FormatAmount(1234567); got != "1,234,567" {
		t.Fatalf("FormatAmount(1234567) = %q", got)
	}
	if got := FormatAmount(0); got != "0" {
		t.Fatalf("FormatAmount(0) = %q", got)
	}
	if got := FormatAmount(-1200); got != "-1,200" {
		t.Fatalf("FormatAmount(-1200) = %q", got)
	}
}

func TestSheetCellBounds(t *testing.T) {
	s := &Sheet{Rows: [][]string{{"a", "b"}}}
	if _, ok := s.Cell(0, 2); ok {
		t.Fatalf("out-of-range col must report missing")
	}
	if _, ok := s.Cell(1, 0); ok {
		t.Fatalf("out-of-range row must report missing")
	}
	if ok := s.SetCell(0, 5, "x"); ok {
		t.Fatalf("set outside row width must fail")
	}
}
