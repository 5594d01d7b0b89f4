// Package sheet defines the read-only tabular view the comparison engine
// works on, plus an in-memory grid implementation of it.
package sheet

// Sheet is a read-only grid addressed by 1-based column and row numbers.
type Sheet interface {
	Title() string
	MaxRow() int
	MaxColumn() int
	// Cell returns the value at (col, row). Cells outside the grid or never
	// written are null.
	Cell(col, row int) Value
}

type coord struct {
	col, row int
}

// Grid is an in-memory Sheet
type Grid struct {
	title  string
	maxCol int
	maxRow int
	cells  map[coord]Value
}

// NewGrid creates an empty grid with the given title and declared bounds.
// Bounds grow when a cell is set outside them.
func NewGrid(title string, maxColumn, maxRow int) *Grid {
	return &Grid{
		title:  title,
		maxCol: maxColumn,
		maxRow: maxRow,
		cells:  make(map[coord]Value),
	}
}

func (g *Grid) Title() string  { return g.title }
func (g *Grid) MaxRow() int    { return g.maxRow }
func (g *Grid) MaxColumn() int { return g.maxCol }

func (g *Grid) Cell(col, row int) Value {
	return g.cells[coord{col, row}]
}

// Set stores a value. Setting a null value removes the cell.
func (g *Grid) Set(col, row int, v Value) {
	if col < 1 || row < 1 {
		return
	}
	if v.IsNull() {
		delete(g.cells, coord{col, row})
		return
	}
	g.cells[coord{col, row}] = v
	if col > g.maxCol {
		g.maxCol = col
	}
	if row > g.maxRow {
		g.maxRow = row
	}
}

// Len returns the number of non-null cells
func (g *Grid) Len() int {
	return len(g.cells)
}
