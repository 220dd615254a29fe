package world

import "github.com/zyedidia/generic/mapset"

// SightRadius is the default line-of-sight radius (Chebyshev distance).
const SightRadius = 6

// Visible returns the cells within radius of center that center can see.
// Uses a square (Chebyshev) area with Bresenham line-of-sight. Walls block
// sight but are themselves visible, so corridors show their sides.
func Visible(grid *Grid, center Coord, radius int) mapset.Set[Coord] {
	visible := mapset.New[Coord]()
	if grid == nil || !grid.IsValidPosition(center.Row, center.Col) {
		return visible
	}
	visible.Put(center)

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			target := Coord{Row: center.Row + dr, Col: center.Col + dc}
			if !grid.IsValidPosition(target.Row, target.Col) {
				continue
			}
			if hasLineOfSight(grid, center, target) {
				visible.Put(target)
			}
		}
	}
	return visible
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// hasLineOfSight returns true if nothing blocks the line from one cell to another.
// Uses Bresenham's line algorithm; only cells strictly between the two ends block.
func hasLineOfSight(grid *Grid, from, to Coord) bool {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	absDr, absDc := abs(dr), abs(dc)
	stepR, stepC := sign(dr), sign(dc)

	r, c := from.Row, from.Col

	if absDr >= absDc {
		// Step along rows
		err := 2*absDc - absDr
		for r != to.Row {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc

			if r == to.Row && c == to.Col {
				return true
			}
			if !grid.IsOpen(r, c) {
				return false
			}
		}
	} else {
		// Step along cols
		err := 2*absDr - absDc
		for c != to.Col {
			c += stepC
			if err > 0 {
				r += stepR
				err -= 2 * absDc
			}
			err += 2 * absDr

			if r == to.Row && c == to.Col {
				return true
			}
			if !grid.IsOpen(r, c) {
				return false
			}
		}
	}

	return true
}
