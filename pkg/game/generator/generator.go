package generator

import (
	"math/rand"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/config"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(level int, rng *rand.Rand) *world.Grid
	Name() string
}

// Backtracker is a generator with the stock maze settings
var Backtracker = NewBacktracker(config.Default().Maze)
