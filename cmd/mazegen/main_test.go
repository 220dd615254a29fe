package main

import (
	"testing"

	"github.com/gookit/color"

	"mazeroll/pkg/engine/world"
)

func TestRenderGrid(t *testing.T) {
	color.Disable()
	grid, err := world.ParseGrid("#####\n#S..#\n###.#\n#G..#\n#####\n")
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	route := map[world.Coord]bool{}
	for _, c := range world.ShortestPath(grid, grid.Start(), grid.Goal()) {
		route[c] = true
	}

	want := "" +
		"██████████\n" +
		"██S · · ██\n" +
		"██████· ██\n" +
		"██G · · ██\n" +
		"██████████\n"
	if got := color.ClearCode(renderGrid(grid, route)); got != want {
		t.Errorf("renderGrid() =\n%s\nwant\n%s", got, want)
	}
}
