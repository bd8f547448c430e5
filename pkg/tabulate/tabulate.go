// Package tabulate lays out short texts in as many columns as fit a line.
package tabulate

import (
	"fmt"
	"io"
	"strings"
)

// Cell is one item to lay out. Cells is its width in character cells, which
// can be smaller than len(Text) when the text carries color escapes or
// multi-byte runes.
type Cell struct {
	Text  string
	Cells int
}

// Orientation selects how consecutive cells flow through the grid.
type Orientation int

const (
	// ByColumns fills down each column before moving right.
	ByColumns Orientation = iota
	// ByRows fills across each row before moving down.
	ByRows
)

// 1 character of content plus 2 separating spaces.
const minColumnWidth = 3

type columnConfig struct {
	widths  []int
	lineLen int
	valid   bool
}

// Tabulator renders cell grids fitted to a maximum line length.
type Tabulator struct {
	maxLineLength int
	orientation   Orientation
}

// New ...
func New(maxLineLength int, orientation Orientation) *Tabulator {
	return &Tabulator{maxLineLength: maxLineLength, orientation: orientation}
}

// Write renders the cells as a grid. Every candidate column count grows
// cell by cell and drops out once its line overflows; the survivor with the
// most columns wins. A single over-long cell still renders on its own line.
func (t *Tabulator) Write(w io.Writer, cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}

	cfg := t.fit(cells)
	numCols := len(cfg.widths)
	numRows := (len(cells) + numCols - 1) / numCols

	for row := 0; row < numRows; row++ {
		var line strings.Builder
		for col := 0; col < numCols; col++ {
			idx := t.index(row, col, numRows, numCols)
			if idx >= len(cells) {
				continue
			}

			last := col == numCols-1 || t.index(row, col+1, numRows, numCols) >= len(cells)

			line.WriteString(cells[idx].Text)
			if !last {
				line.WriteString(strings.Repeat(" ", cfg.widths[col]-cells[idx].Cells))
			}
		}

		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tabulator) index(row, col, numRows, numCols int) int {
	if t.orientation == ByRows {
		return row*numCols + col
	}
	return row + col*numRows
}

func (t *Tabulator) fit(cells []Cell) columnConfig {
	maxCols := max(1, t.maxLineLength/minColumnWidth)
	maxCols = min(maxCols, len(cells))

	configs := make([]columnConfig, maxCols)
	for i := range configs {
		widths := make([]int, i+1)
		for j := range widths {
			widths[j] = minColumnWidth
		}
		configs[i] = columnConfig{
			widths:  widths,
			lineLen: (i + 1) * minColumnWidth,
			valid:   true,
		}
	}

	for idx, cell := range cells {
		for ci := range configs {
			cfg := &configs[ci]
			if !cfg.valid {
				continue
			}

			numCols := len(cfg.widths)
			var col int
			if t.orientation == ByRows {
				col = idx % numCols
			} else {
				col = idx / ((len(cells) + numCols - 1) / numCols)
			}

			// the last column needs no separating spaces
			width := cell.Cells
			if col != numCols-1 {
				width += 2
			}

			if cfg.widths[col] < width {
				cfg.lineLen += width - cfg.widths[col]
				cfg.widths[col] = width
				cfg.valid = cfg.lineLen < t.maxLineLength
			}
		}
	}

	for i := len(configs) - 1; i >= 0; i-- {
		if configs[i].valid {
			return configs[i]
		}
	}
	return configs[0]
}
