package worldmap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/physics"
)

const smallMaze = `
#####
#S..#
###.#
#G..#
#####
`

func parse(t *testing.T, s string) *world.Grid {
	t.Helper()
	g, err := world.ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestScaled_RoundTrip(t *testing.T) {
	m := Scaled{CellSize: 2}
	if got := m.CellToWorld(3, 1); got != (mgl64.Vec3{2, 0, 6}) {
		t.Errorf("CellToWorld(3,1) = %v, want [2 0 6]", got)
	}
	for _, p := range []mgl64.Vec3{{2, 0, 6}, {2.9, 0.45, 5.1}, {1.1, 0, 6.9}} {
		if r, c := m.WorldToCell(p); r != 3 || c != 1 {
			t.Errorf("WorldToCell(%v) = %d,%d, want 3,1", p, r, c)
		}
	}
	if r, c := m.WorldToCell(mgl64.Vec3{-1.5, 0, -0.2}); r != 0 || c != -1 {
		t.Errorf("WorldToCell(negative) = %d,%d, want 0,-1", r, c)
	}
}

func TestBuild_OneBoxPerWall(t *testing.T) {
	g := parse(t, smallMaze)
	l := Build(g, Scaled{CellSize: 2}, 2, 1.6)

	if got, want := len(l.Walls), g.Count(world.Wall); got != want {
		t.Fatalf("len(Walls) = %d, want %d", got, want)
	}
	for _, b := range l.Walls {
		if b.Min.Y() != 0 || b.Max.Y() != 1.6 {
			t.Errorf("box %v does not stand on the ground", b)
		}
		if b.Max.X()-b.Min.X() != 2 || b.Max.Z()-b.Min.Z() != 2 {
			t.Errorf("box %v is not 2 wide", b)
		}
	}
	if l.Start != (mgl64.Vec3{2, 0, 2}) {
		t.Errorf("Start = %v, want [2 0 2]", l.Start)
	}
	if l.Goal != (mgl64.Vec3{2, 0, 6}) {
		t.Errorf("Goal = %v, want [2 0 6]", l.Goal)
	}
	if l.Center != (mgl64.Vec3{4, 0, 4}) || l.Width != 10 || l.Depth != 10 {
		t.Errorf("footprint = %v %vx%v, want [4 0 4] 10x10", l.Center, l.Width, l.Depth)
	}
}

func TestBuild_StartIsClearOfWalls(t *testing.T) {
	g := parse(t, smallMaze)
	l := Build(g, Scaled{CellSize: 2}, 2, 1.6)
	p := l.Start
	p[1] = 0.45
	if _, hit := physics.Resolve(p, 0.45, l.Walls); hit {
		t.Error("a ball resting on the start cell touches a wall")
	}
}
