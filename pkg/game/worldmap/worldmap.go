// Package worldmap places a maze grid in world space: every wall cell becomes
// a collision box and the start and goal cells become world positions.
package worldmap

import (
	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/physics"
)

// Mapping converts grid cells to world positions on the ground plane (Y = 0).
type Mapping interface {
	CellToWorld(row, col int) mgl64.Vec3
	WorldToCell(p mgl64.Vec3) (row, col int)
}

// Scaled maps column to +X and row to +Z, one cell every CellSize units,
// with cell (0,0) centered on the origin.
type Scaled struct {
	CellSize float64
}

// CellToWorld returns the center of a cell
func (s Scaled) CellToWorld(row, col int) mgl64.Vec3 {
	return mgl64.Vec3{float64(col) * s.CellSize, 0, float64(row) * s.CellSize}
}

// WorldToCell returns the cell containing p
func (s Scaled) WorldToCell(p mgl64.Vec3) (row, col int) {
	return roundDiv(p.Z(), s.CellSize), roundDiv(p.X(), s.CellSize)
}

func roundDiv(v, size float64) int {
	q := v / size
	if q < 0 {
		return int(q - 0.5)
	}
	return int(q + 0.5)
}

// Layout is a grid placed in world space.
type Layout struct {
	Walls  []physics.Box
	Start  mgl64.Vec3 // on the ground plane
	Goal   mgl64.Vec3 // on the ground plane
	Center mgl64.Vec3 // middle of the maze footprint
	Width  float64    // extent along X
	Depth  float64    // extent along Z
}

// Build creates one box per wall cell, wallSize wide and wallHeight tall,
// standing on the ground plane.
func Build(grid *world.Grid, m Mapping, wallSize, wallHeight float64) Layout {
	half := mgl64.Vec3{wallSize / 2, wallHeight / 2, wallSize / 2}

	walls := make([]physics.Box, 0, grid.Count(world.Wall))
	grid.ForEachCell(func(row, col int, kind world.CellKind) {
		if kind != world.Wall {
			return
		}
		p := m.CellToWorld(row, col)
		p[1] = wallHeight / 2
		walls = append(walls, physics.BoxFromCenter(p, half))
	})

	start := grid.Start()
	goal := grid.Goal()
	first := m.CellToWorld(0, 0)
	last := m.CellToWorld(grid.Rows()-1, grid.Cols()-1)

	return Layout{
		Walls:  walls,
		Start:  m.CellToWorld(start.Row, start.Col),
		Goal:   m.CellToWorld(goal.Row, goal.Col),
		Center: first.Add(last).Mul(0.5),
		Width:  last.X() - first.X() + wallSize,
		Depth:  last.Z() - first.Z() + wallSize,
	}
}
