package world

import (
	"fmt"
	"strings"
)

// Grid is a rectangular maze of Wall/Open cells with a start and a goal cell.
// Cells are stored row-major in a flat slice.
type Grid struct {
	cells []CellKind
	rows  int
	cols  int

	start Coord
	goal  Coord
}

// NewGrid creates a new grid with the given dimensions, every cell a Wall
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]CellKind, rows*cols)
	g.start = Coord{}
	g.goal = Coord{}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the starting cell
func (g *Grid) Start() Coord {
	return g.start
}

// Goal returns the goal cell
func (g *Grid) Goal() Coord {
	return g.goal
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is strictly inside the outer border
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// Kind returns the cell kind at the given position. Out of bounds reads as Wall.
func (g *Grid) Kind(row, col int) CellKind {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.cells[row*g.cols+col]
}

// IsOpen reports whether the cell at the position is walkable
func (g *Grid) IsOpen(row, col int) bool {
	return g.Kind(row, col) == Open
}

// IsOpenAt is IsOpen for a Coord
func (g *Grid) IsOpenAt(c Coord) bool {
	return g.IsOpen(c.Row, c.Col)
}

// OpenNeighbor returns the first direction, in North, East, South, West
// order, whose neighbor of c is open.
func (g *Grid) OpenNeighbor(c Coord) (Direction, bool) {
	for _, d := range AllDirections() {
		if g.IsOpenAt(c.Step(d, 1)) {
			return d, true
		}
	}
	return North, false
}

// Set changes the kind of a cell. Returns false if out of bounds.
func (g *Grid) Set(row, col int, kind CellKind) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = kind
	return true
}

// Open marks the cell at c as walkable. Returns false if out of bounds.
func (g *Grid) Open(c Coord) bool {
	return g.Set(c.Row, c.Col, Open)
}

// SetStart sets the starting cell. Returns false if out of bounds.
func (g *Grid) SetStart(c Coord) bool {
	if !g.IsValidPosition(c.Row, c.Col) {
		return false
	}
	g.start = c
	return true
}

// SetGoal sets the goal cell and forces it open. Returns false if out of bounds.
func (g *Grid) SetGoal(c Coord) bool {
	if !g.IsValidPosition(c.Row, c.Col) {
		return false
	}
	g.goal = c
	g.Open(c)
	return true
}

// CenterPosition returns the row and column of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.rows / 2, g.cols / 2
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, kind CellKind)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Count returns how many cells have the given kind
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{
		cells: make([]CellKind, len(g.cells)),
		rows:  g.rows,
		cols:  g.cols,
		start: g.start,
		goal:  g.goal,
	}
	copy(out.cells, g.cells)
	return out
}

// Validate checks the grid for the invariants every playable maze must hold
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.rows, g.cols)
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.IsOnPerimeter(row, col) && g.IsOpen(row, col) {
				return fmt.Errorf("border cell %d,%d is open", row, col)
			}
		}
	}

	if !g.IsOpenAt(g.start) {
		return fmt.Errorf("start cell %v is not open", g.start)
	}

	if !g.IsOpenAt(g.goal) {
		return fmt.Errorf("goal cell %v is not open", g.goal)
	}

	if !PathExists(g, g.start, g.goal) {
		return fmt.Errorf("goal %v is not reachable from start %v", g.goal, g.start)
	}

	return nil
}

// String renders the grid as text: '#' for walls, '.' for open cells,
// 'S' and 'G' for the start and goal.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := Coord{Row: row, Col: col}
			switch {
			case c == g.start:
				b.WriteByte('S')
			case c == g.goal:
				b.WriteByte('G')
			case g.IsOpen(row, col):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid builds a grid from the text produced by String. Lines must be of
// equal length; 'S' and 'G' mark the start and goal, '.' is open, anything else a wall.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	g := NewGrid(len(lines), len(strings.TrimSpace(lines[0])))
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != g.cols {
			return nil, fmt.Errorf("line %d has %d columns, want %d", row, len(line), g.cols)
		}
		for col, ch := range line {
			c := Coord{Row: row, Col: col}
			switch ch {
			case '.':
				g.Open(c)
			case 'S':
				g.Open(c)
				g.SetStart(c)
			case 'G':
				g.SetGoal(c)
			}
		}
	}
	return g, nil
}
