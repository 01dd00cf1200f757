package output

import (
	"strings"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 8, "hello   "},
		{"hello", 5, "hello"},
		{"hello", 3, "hello"},
		{"", 2, "  "},
	}

	for _, tc := range tests {
		got := pad(tc.input, tc.width)
		if got != tc.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
		}
	}
}

func TestTable_WidthsTrackLongestCell(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("MOOD", "SENTIMENT")
	tbl.AddRow("happy", "+0.2")
	tbl.AddRow("overwhelmed", "-0.4")

	if tbl.widths[0] != len("overwhelmed") {
		t.Errorf("expected first column width %d, got %d", len("overwhelmed"), tbl.widths[0])
	}
	if tbl.widths[1] != len("SENTIMENT") {
		t.Errorf("expected header to set second column width, got %d", tbl.widths[1])
	}
}

func TestTable_RenderContainsAllCells(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("WHEN", "TIER")
	tbl.AddRow("Aug 28 09:15", "5")
	tbl.AddRow("Aug 28 21:40", "8 !")

	out := tbl.Render()
	for _, want := range []string{"WHEN", "TIER", "Aug 28 09:15", "8 !"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // header + separator + two rows
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
}

func TestTable_ShortRowPadded(t *testing.T) {
	SetNoColor(true)

	tbl := NewTable("A", "B", "C")
	tbl.AddRow("only")

	out := tbl.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("missing cell in output:\n%s", out)
	}
}

func TestScoreBar_Bounds(t *testing.T) {
	SetNoColor(true)

	full := ScoreBar(100, 10)
	if !strings.Contains(full, strings.Repeat("█", 10)) {
		t.Errorf("expected full bar at 100, got %q", full)
	}

	empty := ScoreBar(0, 10)
	if !strings.Contains(empty, strings.Repeat("░", 10)) {
		t.Errorf("expected empty bar at 0, got %q", empty)
	}

	over := ScoreBar(150, 10)
	if strings.Count(over, "█") > 10 {
		t.Errorf("bar overflows width: %q", over)
	}
}
