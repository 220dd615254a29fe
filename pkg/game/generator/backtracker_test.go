// Package generator tests maze carving: connectivity, sealed borders,
// deterministic seeds, and the loop augmentation pass.
package generator

import (
	"math"
	"math/rand"
	"testing"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/config"
)

// perfectMaze returns maze settings with loop augmentation switched off.
func perfectMaze() config.Maze {
	m := config.Default().Maze
	m.LoopBase = 0
	m.LoopGrowth = 0
	m.LoopMin = 0
	m.LoopMax = 0
	return m
}

func TestGenerate_FirstLevelScenario(t *testing.T) {
	grid := Backtracker.Generate(1, rand.New(rand.NewSource(1)))
	if grid.Rows() != 11 || grid.Cols() != 11 {
		t.Fatalf("size = %dx%d, want 11x11", grid.Rows(), grid.Cols())
	}
	if grid.Start() != (world.Coord{Row: 1, Col: 1}) {
		t.Errorf("Start() = %v, want 1,1", grid.Start())
	}
	if grid.Goal() != (world.Coord{Row: 9, Col: 9}) {
		t.Errorf("Goal() = %v, want 9,9", grid.Goal())
	}
	if !grid.IsOpen(1, 1) || !grid.IsOpen(9, 9) {
		t.Error("start and goal must be open")
	}
	if world.ShortestPath(grid, grid.Start(), grid.Goal()) == nil {
		t.Error("no path from start to goal")
	}
}

func TestGenerate_ConnectedAndSealed(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		level := int(seed%20) + 1
		grid := Backtracker.Generate(level, rand.New(rand.NewSource(seed)))

		for row := 0; row < grid.Rows(); row++ {
			for col := 0; col < grid.Cols(); col++ {
				if grid.IsOnPerimeter(row, col) && grid.IsOpen(row, col) {
					t.Fatalf("seed %d level %d: border cell %d,%d is open", seed, level, row, col)
				}
			}
		}

		reach := world.Reachable(grid, grid.Start())
		if open := grid.Count(world.Open); reach.Size() != open {
			t.Fatalf("seed %d level %d: reached %d of %d open cells", seed, level, reach.Size(), open)
		}
	}
}

func TestGenerate_SameSeedSameMaze(t *testing.T) {
	a := Backtracker.Generate(7, rand.New(rand.NewSource(42)))
	b := Backtracker.Generate(7, rand.New(rand.NewSource(42)))
	if a.String() != b.String() {
		t.Errorf("same seed produced different mazes:\n%s\n%s", a, b)
	}

	c := Backtracker.Generate(7, rand.New(rand.NewSource(43)))
	if a.String() == c.String() {
		t.Error("different seeds produced the same maze")
	}
}

func TestGenerate_PerfectMazeWithoutLoops(t *testing.T) {
	gen := NewBacktracker(perfectMaze())
	for seed := int64(0); seed < 10; seed++ {
		grid, stats := gen.GenerateWithStats(3, rand.New(rand.NewSource(seed)))
		if stats.BridgesOpened != 0 {
			t.Fatalf("seed %d: BridgesOpened = %d, want 0", seed, stats.BridgesOpened)
		}

		// Every lattice node is carved and joined to the tree by exactly one passage.
		k := (grid.Rows() - 1) / 2
		if got, want := grid.Count(world.Open), 2*k*k-1; got != want {
			t.Errorf("seed %d: open cells = %d, want %d", seed, got, want)
		}
		for row := 1; row < grid.Rows(); row += 2 {
			for col := 1; col < grid.Cols(); col += 2 {
				if !grid.IsOpen(row, col) {
					t.Errorf("seed %d: lattice node %d,%d is a wall", seed, row, col)
				}
			}
		}
	}
}

func TestGenerate_LoopsOnlyOpenWalls(t *testing.T) {
	perfect := NewBacktracker(perfectMaze())
	loopy := NewBacktracker(config.Default().Maze)

	for seed := int64(0); seed < 10; seed++ {
		base := perfect.Generate(20, rand.New(rand.NewSource(seed)))
		grid, stats := loopy.GenerateWithStats(20, rand.New(rand.NewSource(seed)))

		grid.ForEachCell(func(row, col int, kind world.CellKind) {
			if base.IsOpen(row, col) && kind != world.Open {
				t.Errorf("seed %d: loop pass closed cell %d,%d", seed, row, col)
			}
		})
		if got, want := grid.Count(world.Open)-base.Count(world.Open), stats.BridgesOpened; got != want {
			t.Errorf("seed %d: %d extra open cells, stats say %d", seed, got, want)
		}
	}
}

func TestGenerate_LoopFractionMatchesChance(t *testing.T) {
	const level = 10
	want := Backtracker.Curve().LoopChance(level)

	var candidates, opened int
	for seed := int64(0); seed < 300; seed++ {
		_, stats := Backtracker.GenerateWithStats(level, rand.New(rand.NewSource(seed)))
		candidates += stats.BridgeCandidates
		opened += stats.BridgesOpened
	}
	if candidates == 0 {
		t.Fatal("no bridge candidates found")
	}

	got := float64(opened) / float64(candidates)
	if math.Abs(got-want) > 0.015 {
		t.Errorf("opened fraction = %.4f over %d candidates, want %.2f", got, candidates, want)
	}
}

func TestGenerate_LevelsBelowOneUseLevelOne(t *testing.T) {
	grid := Backtracker.Generate(-4, rand.New(rand.NewSource(5)))
	if grid.Rows() != Backtracker.Curve().Size(1) {
		t.Errorf("Rows() = %d, want %d", grid.Rows(), Backtracker.Curve().Size(1))
	}
}

func TestBacktracker_Name(t *testing.T) {
	var gen GridGenerator = Backtracker
	if gen.Name() != "Recursive Backtracker" {
		t.Errorf("Name() = %q", gen.Name())
	}
}
