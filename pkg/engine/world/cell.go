// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// CellKind is the content of a single grid cell.
type CellKind uint8

// Cell kinds. The zero value is Wall so a freshly built grid is solid.
const (
	Wall CellKind = iota
	Open
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Coord addresses a cell by row and column (0-based, row is vertical).
type Coord struct {
	Row int
	Col int
}

// Step returns the coordinate n cells away in the given direction
func (c Coord) Step(dir Direction, n int) Coord {
	dr, dc := dir.Delta()
	return Coord{Row: c.Row + dr*n, Col: c.Col + dc*n}
}

// Midpoint returns the cell halfway between c and o.
// Only meaningful when both lie on the same row or column an even distance apart.
func (c Coord) Midpoint(o Coord) Coord {
	return Coord{Row: (c.Row + o.Row) / 2, Col: (c.Col + o.Col) / 2}
}

// Manhattan returns the Manhattan distance between two coordinates
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
