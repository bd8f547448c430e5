package tabulate

import (
	"bytes"
	"strings"
	"testing"
)

func plainCells(names ...string) []Cell {
	cells := make([]Cell, len(names))
	for i, n := range names {
		cells[i] = Cell{Text: n, Cells: len(n)}
	}
	return cells
}

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cells         []Cell
		maxLineLength int
		orientation   Orientation
		want          []string
	}{
		{
			name:          "no cells",
			cells:         nil,
			maxLineLength: 80,
			orientation:   ByColumns,
			want:          []string{},
		},
		{
			name:          "single cell",
			cells:         plainCells("hello"),
			maxLineLength: 80,
			orientation:   ByColumns,
			want:          []string{"hello"},
		},
		{
			name:          "all cells on one line",
			cells:         plainCells("aa", "b", "cccc", "dd", "e"),
			maxLineLength: 80,
			orientation:   ByColumns,
			want:          []string{"aa  b  cccc  dd  e"},
		},
		{
			name:          "narrow line flows down columns",
			cells:         plainCells("aa", "b", "cccc", "dd", "e"),
			maxLineLength: 10,
			orientation:   ByColumns,
			want: []string{
				"aa    dd",
				"b     e",
				"cccc",
			},
		},
		{
			name:          "narrow line flows across rows",
			cells:         plainCells("aa", "b", "cccc", "dd", "e"),
			maxLineLength: 10,
			orientation:   ByRows,
			want: []string{
				"aa    b",
				"cccc  dd",
				"e",
			},
		},
		{
			name:          "cell wider than the line still renders",
			cells:         plainCells("an-overly-long-name", "b"),
			maxLineLength: 8,
			orientation:   ByColumns,
			want: []string{
				"an-overly-long-name",
				"b",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := New(tc.maxLineLength, tc.orientation).Write(&buf, tc.cells); err != nil {
				t.Fatalf("Write(): %s", err)
			}

			want := ""
			if len(tc.want) > 0 {
				want = strings.Join(tc.want, "\n") + "\n"
			}
			if buf.String() != want {
				t.Errorf("Write() rendered:\n%q\nwant:\n%q", buf.String(), want)
			}
		})
	}
}

func TestWrite_ColoredCellPadding(t *testing.T) {
	t.Parallel()

	// A color escape inflates len(Text) but not Cells; padding must follow
	// Cells so columns stay aligned.
	colored := "\x1b[1mdir\x1b[0m"
	cells := []Cell{
		{Text: colored, Cells: 3},
		{Text: "file", Cells: 4},
	}

	var buf bytes.Buffer
	if err := New(80, ByColumns).Write(&buf, cells); err != nil {
		t.Fatalf("Write(): %s", err)
	}

	want := colored + "  file\n"
	if buf.String() != want {
		t.Errorf("Write() rendered %q, want %q", buf.String(), want)
	}
}
