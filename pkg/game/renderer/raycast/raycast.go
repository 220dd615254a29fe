// Package raycast projects the maze grid into a first-person view. It works on
// the grid rather than the wall boxes: walls are whole cells, so a DDA walk
// through the cells finds the nearest wall face for every screen column.
package raycast

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/engine/world"
)

// Side tells which face of a cell a ray struck.
type Side int

const (
	SideX Side = iota // a face perpendicular to X (east or west)
	SideZ             // a face perpendicular to Z (north or south)
)

// maxSteps bounds a single ray walk through the grid.
const maxSteps = 512

// Hit is where a ray met a wall.
type Hit struct {
	Ok       bool
	Distance float64 // along the view direction, in world units
	Side     Side
	Cell     world.Coord
}

// Cast walks a ray from origin along dir through grid cells of size cellSize,
// centred on col*cellSize and row*cellSize. Only X and Z are used. The
// distance is measured along dir's own length, so passing the view direction
// plus a camera-plane offset yields the perpendicular distance used for
// fisheye-free projection.
func Cast(grid *world.Grid, cellSize float64, origin, dir mgl64.Vec3) Hit {
	u := origin.X()/cellSize + 0.5
	w := origin.Z()/cellSize + 0.5
	col, row := int(math.Floor(u)), int(math.Floor(w))
	dx, dz := dir.X(), dir.Z()

	stepX, deltaX, sideX := axisStep(u, dx)
	stepZ, deltaZ, sideZ := axisStep(w, dz)

	for i := 0; i < maxSteps; i++ {
		var side Side
		var dist float64
		if sideX < sideZ {
			dist = sideX
			sideX += deltaX
			col += stepX
			side = SideX
		} else {
			dist = sideZ
			sideZ += deltaZ
			row += stepZ
			side = SideZ
		}
		if !grid.IsValidPosition(row, col) {
			return Hit{}
		}
		if !grid.IsOpen(row, col) {
			return Hit{Ok: true, Distance: dist * cellSize, Side: side, Cell: world.Coord{Row: row, Col: col}}
		}
	}
	return Hit{}
}

// axisStep returns the cell step, the ray length per cell and the ray length
// to the first cell boundary along one axis. An axis the ray does not move
// along is never crossed.
func axisStep(pos, d float64) (step int, delta, first float64) {
	cell := math.Floor(pos)
	switch {
	case d > 0:
		return 1, 1 / d, (cell + 1 - pos) / d
	case d < 0:
		return -1, -1 / d, (pos - cell) / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// View is a pinhole camera looking across the maze.
type View struct {
	Width, Height int
	FOV           float64 // horizontal, radians
	Yaw, Pitch    float64
	Eye           mgl64.Vec3
	WallHeight    float64
}

// Forward is the horizontal view direction.
func (v View) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(v.Yaw), 0, math.Cos(v.Yaw)}
}

// Right is the horizontal direction to the right of Forward.
func (v View) Right() mgl64.Vec3 {
	return mgl64.Vec3{-math.Cos(v.Yaw), 0, math.Sin(v.Yaw)}
}

// Focal is the distance to the image plane in pixels.
func (v View) Focal() float64 {
	return float64(v.Width) / 2 / math.Tan(v.FOV/2)
}

// Horizon is the screen row of the eye level. Looking up moves it down.
func (v View) Horizon() float64 {
	return float64(v.Height)/2 + math.Tan(v.Pitch)*v.Focal()
}

// RayDir is the (unnormalized) ray through the centre of screen column col.
func (v View) RayDir(col int) mgl64.Vec3 {
	camX := 2*(float64(col)+0.5)/float64(v.Width) - 1
	return v.Forward().Add(v.Right().Mul(camX * math.Tan(v.FOV/2)))
}

// Column is one vertical strip of wall on screen.
type Column struct {
	Hit
	Top, Bottom float64
}

// Columns casts one ray per screen column.
func (v View) Columns(grid *world.Grid, cellSize float64) []Column {
	cols := make([]Column, v.Width)
	focal, horizon := v.Focal(), v.Horizon()
	for x := range cols {
		h := Cast(grid, cellSize, v.Eye, v.RayDir(x))
		cols[x].Hit = h
		if !h.Ok || h.Distance <= 0 {
			continue
		}
		cols[x].Top = horizon - (v.WallHeight-v.Eye.Y())*focal/h.Distance
		cols[x].Bottom = horizon + v.Eye.Y()*focal/h.Distance
	}
	return cols
}

// Project maps a world point to screen coordinates. ok is false for points
// behind or too close to the eye.
func (v View) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	d := p.Sub(v.Eye)
	depth = d.Dot(v.Forward())
	if depth < 0.05 {
		return 0, 0, depth, false
	}
	focal := v.Focal()
	x = float64(v.Width)/2 + d.Dot(v.Right())/depth*focal
	y = v.Horizon() - d.Y()/depth*focal
	return x, y, depth, true
}

// Shade darkens a colour channel with distance, keeping a floor of ambient light.
func Shade(distance, falloff float64) float64 {
	s := 1 / (1 + distance*falloff)
	return mgl64.Clamp(s, 0.15, 1)
}
