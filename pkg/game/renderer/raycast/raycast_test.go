package raycast

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/engine/world"
)

const room = `
#####
#S..#
#...#
#..G#
#####
`

func newRoom(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid(room)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCast_FindsNearestFace(t *testing.T) {
	g := newRoom(t)
	eye := mgl64.Vec3{4, 0.5, 4} // centre of cell (2,2) with 2-unit cells

	tests := []struct {
		name string
		dir  mgl64.Vec3
		cell world.Coord
		side Side
	}{
		{"south", mgl64.Vec3{0, 0, 1}, world.Coord{Row: 4, Col: 2}, SideZ},
		{"north", mgl64.Vec3{0, 0, -1}, world.Coord{Row: 0, Col: 2}, SideZ},
		{"east", mgl64.Vec3{1, 0, 0}, world.Coord{Row: 2, Col: 4}, SideX},
		{"west", mgl64.Vec3{-1, 0, 0}, world.Coord{Row: 2, Col: 0}, SideX},
	}
	for _, tt := range tests {
		h := Cast(g, 2, eye, tt.dir)
		if !h.Ok {
			t.Errorf("%s: no hit", tt.name)
			continue
		}
		if h.Cell != tt.cell || h.Side != tt.side {
			t.Errorf("%s: hit %v side %v, want %v side %v", tt.name, h.Cell, h.Side, tt.cell, tt.side)
		}
		if !approx(h.Distance, 3) {
			t.Errorf("%s: Distance = %v, want 3", tt.name, h.Distance)
		}
	}
}

func TestCast_PerpendicularDistance(t *testing.T) {
	g := newRoom(t)
	// A slanted ray with a unit forward component reports the distance along forward.
	h := Cast(g, 2, mgl64.Vec3{4, 0.5, 4}, mgl64.Vec3{0.25, 0, 1})
	if !h.Ok || !approx(h.Distance, 3) {
		t.Errorf("Cast() = %+v, want a hit at forward distance 3", h)
	}
}

func TestView_Columns(t *testing.T) {
	g := newRoom(t)
	v := View{
		Width:      64,
		Height:     48,
		FOV:        math.Pi / 2,
		Eye:        mgl64.Vec3{4, 0.5, 4},
		WallHeight: 1.5,
	}
	cols := v.Columns(g, 2)
	if len(cols) != 64 {
		t.Fatalf("len(Columns) = %d, want 64", len(cols))
	}
	mid := cols[32]
	if !mid.Ok || !approx(mid.Distance, 3) {
		t.Fatalf("middle column = %+v", mid)
	}
	if !approx(mid.Top, 24-32.0/3) || !approx(mid.Bottom, 24+16.0/3) {
		t.Errorf("middle column spans %v..%v", mid.Top, mid.Bottom)
	}
	for i, c := range cols {
		if !c.Ok {
			t.Errorf("column %d missed every wall in a closed room", i)
		}
	}
}

func TestView_Project(t *testing.T) {
	v := View{Width: 64, Height: 48, FOV: math.Pi / 2, Eye: mgl64.Vec3{4, 0.5, 4}}

	x, y, depth, ok := v.Project(mgl64.Vec3{4, 0.5, 8})
	if !ok || !approx(x, 32) || !approx(y, 24) || !approx(depth, 4) {
		t.Errorf("Project(ahead) = %v, %v, %v, %v", x, y, depth, ok)
	}

	// Right of a +Z view is -X.
	x, _, _, ok = v.Project(mgl64.Vec3{2, 0.5, 6})
	if !ok || !approx(x, 64) {
		t.Errorf("Project(right) x = %v, want 64", x)
	}

	if _, _, _, ok := v.Project(mgl64.Vec3{4, 0.5, 1}); ok {
		t.Error("a point behind the eye projected")
	}
}

func TestView_HorizonFollowsPitch(t *testing.T) {
	v := View{Width: 64, Height: 48, FOV: math.Pi / 2}
	if v.Horizon() != 24 {
		t.Errorf("Horizon() = %v, want 24", v.Horizon())
	}
	v.Pitch = 0.3
	if v.Horizon() <= 24 {
		t.Errorf("looking up left the horizon at %v", v.Horizon())
	}
}

func TestShade(t *testing.T) {
	if Shade(0, 0.2) != 1 {
		t.Errorf("Shade(0) = %v, want 1", Shade(0, 0.2))
	}
	if Shade(1000, 0.2) != 0.15 {
		t.Errorf("Shade(far) = %v, want 0.15", Shade(1000, 0.2))
	}
}
