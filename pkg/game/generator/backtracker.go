package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/config"
)

// BacktrackerGenerator carves a perfect maze with a randomized depth-first
// search on the odd-coordinate lattice, then opens a random share of the
// single-cell "bridge" walls between straight passages to add loops.
type BacktrackerGenerator struct {
	curve Curve
}

// Stats describes one generation run.
type Stats struct {
	Difficulty       Difficulty
	BridgeCandidates int // walls that qualified as bridges when visited
	BridgesOpened    int
}

// NewBacktracker creates a backtracker using the given maze settings
func NewBacktracker(m config.Maze) *BacktrackerGenerator {
	return &BacktrackerGenerator{curve: NewCurve(m)}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Curve returns the difficulty curve driving grid size and loop chance
func (g *BacktrackerGenerator) Curve() Curve {
	return g.curve
}

// Generate creates the maze for a level, drawing all randomness from rng
func (g *BacktrackerGenerator) Generate(level int, rng *rand.Rand) *world.Grid {
	grid, _ := g.GenerateWithStats(level, rng)
	return grid
}

// GenerateWithStats is Generate plus loop augmentation counters.
func (g *BacktrackerGenerator) GenerateWithStats(level int, rng *rand.Rand) (*world.Grid, Stats) {
	diff := g.curve.ForLevel(level)
	grid := world.NewGrid(diff.Size, diff.Size)

	start := world.Coord{Row: 1, Col: 1}
	goal := world.Coord{Row: diff.Size - 2, Col: diff.Size - 2}

	carve(grid, start, rng)

	stats := Stats{Difficulty: diff}
	stats.BridgeCandidates, stats.BridgesOpened = openBridges(grid, diff.LoopChance, rng)

	grid.SetStart(start)
	grid.Open(start)
	grid.SetGoal(goal)

	if err := grid.Validate(); err != nil {
		panic("Generated invalid grid: " + err.Error())
	}

	return grid, stats
}

// carve runs the recursive backtracker from start. Neighbors sit two cells away;
// carving opens the neighbor and the wall cell between.
func carve(grid *world.Grid, start world.Coord, rng *rand.Rand) {
	s := stack.New[world.Coord]()
	grid.Open(start)
	s.Push(start)

	for s.Size() > 0 {
		current := s.Peek()

		moved := false
		for _, dir := range world.ShuffledDirections(rng) {
			next := current.Step(dir, 2)
			if !grid.IsPlayablePosition(next.Row, next.Col) || grid.IsOpenAt(next) {
				continue
			}

			grid.Open(current.Midpoint(next))
			grid.Open(next)
			s.Push(next)
			moved = true
			break
		}

		if !moved {
			s.Pop()
		}
	}
}

// openBridges flips interior bridge walls to open with the given probability.
// A bridge has both neighbors open on one axis and both neighbors walls on the other.
// The grid is scanned row-major and read as it is being modified.
func openBridges(grid *world.Grid, chance float64, rng *rand.Rand) (candidates, opened int) {
	for row := 1; row < grid.Rows()-1; row++ {
		for col := 1; col < grid.Cols()-1; col++ {
			if grid.IsOpen(row, col) || !isBridge(grid, row, col) {
				continue
			}
			candidates++
			if rng.Float64() < chance {
				grid.Set(row, col, world.Open)
				opened++
			}
		}
	}
	return candidates, opened
}

func isBridge(grid *world.Grid, row, col int) bool {
	left := grid.IsOpen(row, col-1)
	right := grid.IsOpen(row, col+1)
	up := grid.IsOpen(row-1, col)
	down := grid.IsOpen(row+1, col)

	horizontal := left && right && !up && !down
	vertical := up && down && !left && !right
	return horizontal || vertical
}
