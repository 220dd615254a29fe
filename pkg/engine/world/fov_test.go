package world

import "testing"

func TestVisible_WallsBlockSight(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	v := Visible(g, g.Start(), SightRadius)

	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{Row: 1, Col: 1}, true},  // own cell
		{Coord{Row: 1, Col: 5}, true},  // end of the corridor
		{Coord{Row: 2, Col: 1}, true},  // wall beside the ball
		{Coord{Row: 0, Col: 0}, true},  // corner wall
		{Coord{Row: 3, Col: 1}, false}, // goal behind the wall
		{Coord{Row: 3, Col: 5}, false},
	}
	for _, tt := range tests {
		if got := v.Has(tt.c); got != tt.want {
			t.Errorf("Visible has %v = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestVisible_Radius(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	v := Visible(g, g.Start(), 1)
	if v.Has(Coord{Row: 1, Col: 3}) {
		t.Error("cell two columns away visible with radius 1")
	}
	if !v.Has(Coord{Row: 1, Col: 2}) {
		t.Error("adjacent open cell not visible")
	}
}

func TestVisible_OutsideGrid(t *testing.T) {
	g, err := ParseGrid(corridorMaze)
	if err != nil {
		t.Fatal(err)
	}
	if v := Visible(g, Coord{Row: -1, Col: 3}, SightRadius); v.Size() != 0 {
		t.Errorf("Visible from outside = %d cells, want 0", v.Size())
	}
	if v := Visible(nil, Coord{}, SightRadius); v.Size() != 0 {
		t.Errorf("Visible on nil grid = %d cells, want 0", v.Size())
	}
}
