package devtools

import (
	"fmt"

	"mazeroll/pkg/engine/world"
)

// devArena is an open room with pillars, a wedge pocket and a long straight,
// handy for checking collision response without a maze in the way.
const devArena = `
#############
#S..........#
#.#.#.#.#.#.#
#...........#
#.#.#...#.#.#
#......##...#
#.#...#.....#
#...........#
#.#.#...#.#.#
#...........#
#.#.#.#.#.#.#
#..........G#
#############
`

// DevArena returns a fresh copy of the developer test arena
func DevArena() *world.Grid {
	grid, err := world.ParseGrid(devArena)
	if err != nil {
		panic(fmt.Sprintf("dev arena does not parse: %v", err))
	}
	if err := grid.Validate(); err != nil {
		panic("Generated invalid grid: " + err.Error())
	}
	return grid
}
