package world

import (
	"math/rand"
	"testing"
)

const corridorMaze = `
#######
#S....#
#####.#
#G....#
#######`

func TestParseGrid_RoundTripsString(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g.Rows() != 5 || g.Cols() != 7 {
		t.Fatalf("size = %dx%d, want 5x7", g.Rows(), g.Cols())
	}
	if g.Start() != (Coord{Row: 1, Col: 1}) {
		t.Errorf("Start() = %v, want 1,1", g.Start())
	}
	if g.Goal() != (Coord{Row: 3, Col: 1}) {
		t.Errorf("Goal() = %v, want 3,1", g.Goal())
	}
	again, err := ParseGrid(g.String())
	if err != nil {
		t.Fatalf("ParseGrid(String()): %v", err)
	}
	if again.String() != g.String() {
		t.Errorf("String() not stable:\n%s\nvs\n%s", again.String(), g.String())
	}
}

func TestGrid_OpenNeighbor(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}

	tests := []struct {
		at     Coord
		want   Direction
		wantOK bool
	}{
		{Coord{Row: 1, Col: 1}, East, true},
		{Coord{Row: 1, Col: 5}, South, true},
		{Coord{Row: 2, Col: 5}, North, true},
		{Coord{Row: 2, Col: 2}, North, true},
		{Coord{Row: 0, Col: 0}, North, false},
	}
	for _, tt := range tests {
		got, ok := g.OpenNeighbor(tt.at)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("OpenNeighbor(%v) = %v,%v, want %v,%v", tt.at, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseGrid_RaggedLines(t *testing.T) {
	if _, err := ParseGrid("###\n##\n###"); err == nil {
		t.Error("ParseGrid accepted ragged input, want error")
	}
}

func TestGrid_KindOutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.Open(Coord{Row: 1, Col: 1})
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 1}, {1, 3}} {
		if g.Kind(c.Row, c.Col) != Wall {
			t.Errorf("Kind(%v) = %v, want Wall", c, g.Kind(c.Row, c.Col))
		}
	}
	if g.Set(5, 5, Open) {
		t.Error("Set out of bounds returned true")
	}
}

func TestGrid_PerimeterClassification(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.IsOnPerimeter(0, 2) || !g.IsOnPerimeter(4, 4) || !g.IsOnPerimeter(2, 0) {
		t.Error("edge cells not classified as perimeter")
	}
	if g.IsOnPerimeter(2, 2) || !g.IsPlayablePosition(1, 3) {
		t.Error("interior cells classified as perimeter")
	}
	if g.IsOnPerimeter(-1, 0) {
		t.Error("out-of-bounds cell classified as perimeter")
	}
}

func TestGrid_ValidateRejectsOpenBorder(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() on valid maze = %v", err)
	}
	g.Set(0, 3, Open)
	if err := g.Validate(); err == nil {
		t.Error("Validate() accepted open border cell")
	}
}

func TestGrid_ValidateRejectsDisconnectedGoal(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(2, 5, Wall)
	if err := g.Validate(); err == nil {
		t.Error("Validate() accepted unreachable goal")
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	c.Set(1, 2, Wall)
	if !g.IsOpen(1, 2) {
		t.Error("mutating clone changed original")
	}
}

func TestShortestPath_FollowsCorridor(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	path := ShortestPath(g, g.Start(), g.Goal())
	if len(path) != 11 {
		t.Fatalf("len(path) = %d, want 11: %v", len(path), path)
	}
	if path[0] != g.Start() || path[len(path)-1] != g.Goal() {
		t.Errorf("path endpoints = %v..%v, want start..goal", path[0], path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if path[i].Manhattan(path[i-1]) != 1 {
			t.Errorf("path step %d jumps from %v to %v", i, path[i-1], path[i])
		}
	}
}

func TestReachable_CountsOpenRegion(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	r := Reachable(g, g.Start())
	if r.Size() != g.Count(Open) {
		t.Errorf("reachable = %d, open = %d", r.Size(), g.Count(Open))
	}
	if r := Reachable(g, Coord{Row: 0, Col: 0}); r.Size() != 0 {
		t.Errorf("Reachable from wall = %d cells, want 0", r.Size())
	}
}

func TestShuffledDirections_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		seen := map[Direction]bool{}
		for _, d := range ShuffledDirections(rng) {
			seen[d] = true
		}
		if len(seen) != 4 {
			t.Fatalf("ShuffledDirections returned %v, want all four directions", seen)
		}
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr != -or || dc != -oc {
			t.Errorf("%v.Opposite() delta = %d,%d, want %d,%d", d, or, oc, -dr, -dc)
		}
		if d.Horizontal() != (dr == 0) {
			t.Errorf("%v.Horizontal() = %v with delta %d,%d", d, d.Horizontal(), dr, dc)
		}
	}
}
