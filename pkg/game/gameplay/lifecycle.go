// Package gameplay drives a game: it loads levels, advances the simulation one
// tick at a time and applies the player's discrete actions.
package gameplay

import (
	"math/rand"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/config"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/physics"
	"mazeroll/pkg/game/progress"
	"mazeroll/pkg/game/state"
	"mazeroll/pkg/game/worldmap"
)

// BuildGame creates a game and loads its first level. The seed drives every
// maze the game generates.
func BuildGame(cfg config.Config, store progress.Store, seed int64) *state.Game {
	g := state.NewGame(cfg, store, seed)
	LoadLevel(g, g.Rng.Int63())

	g.ClearMessages()
	logMessage(g, "Welcome to the maze!")
	logMessage(g, "You are on level LEVEL{%d}.", g.Level())
	ShowLevelObjectives(g)
	ShowMovementHint(g)

	return g
}

// GenerateGrid builds the maze for a level from its own seed
func GenerateGrid(g *state.Game, level int, seed int64) *world.Grid {
	return g.Generator.Generate(level, rand.New(rand.NewSource(seed)))
}

// LoadLevel generates the maze for the current level and places the ball on its start.
func LoadLevel(g *state.Game, seed int64) {
	LoadGrid(g, GenerateGrid(g, g.Level(), seed), seed)
}

// LoadGrid installs a ready-made grid as the current level. The previous
// level's walls and player state are replaced wholesale.
func LoadGrid(g *state.Game, grid *world.Grid, seed int64) {
	cfg := g.Config

	g.LevelSeed = seed
	g.Grid = grid
	g.Layout = worldmap.Build(grid, g.Mapping, cfg.World.WallSize, cfg.World.WallHeight)

	start := g.Layout.Start
	start[1] = cfg.Player.RestY
	facing := startFacing(g, grid)
	g.Player = physics.Body{Position: start, Radius: cfg.Player.Radius, Facing: facing}
	g.Camera.Reset(facing)

	g.HasWon = false
	g.WonAt = 0
	g.Clock = 0
	g.LastRoll = -1
	g.LastStep = physics.StepResult{}
	g.TickCount = 0

	g.Events.Push(events.LevelLoaded{
		RunID: g.RunID,
		Level: g.Level(),
		Seed:  seed,
		Grid:  grid,
		Start: g.Layout.Start,
		Goal:  g.Layout.Goal,
	})
}

// startFacing returns the heading from the start cell into its first open
// neighbor, so the first-person view does not open facing a wall.
func startFacing(g *state.Game, grid *world.Grid) float64 {
	from := grid.Start()
	d, ok := grid.OpenNeighbor(from)
	if !ok {
		return 0
	}
	to := from.Step(d, 1)
	return physics.Heading(g.Mapping.CellToWorld(to.Row, to.Col).Sub(g.Mapping.CellToWorld(from.Row, from.Col)))
}

// AdvanceLevel moves to the next level and generates a new maze for it
func AdvanceLevel(g *state.Game) {
	g.Progress.Advance()
	LoadLevel(g, g.Rng.Int63())

	g.ClearMessages()
	logMessage(g, "You reached level LEVEL{%d}!", g.Level())
	ShowLevelObjectives(g)
}

// RestartLevel replays the current level. The maze is regenerated from a
// fresh seed unless restarts are pinned to the level's seed.
func RestartLevel(g *state.Game) {
	g.Progress.Restart()

	seed := g.LevelSeed
	if !g.Config.Levels.PinRestartSeed {
		seed = g.Rng.Int63()
	}
	LoadLevel(g, seed)

	g.ClearMessages()
	logMessage(g, "Level reset!")
	logMessage(g, "You are on level LEVEL{%d}.", g.Level())
	ShowLevelObjectives(g)
}

// ResetProgress returns to the start level. The best level is kept.
func ResetProgress(g *state.Game) {
	g.Progress.Reset()
	LoadLevel(g, g.Rng.Int63())

	g.ClearMessages()
	logMessage(g, "Progress reset, back to level LEVEL{%d}.", g.Level())
	ShowLevelObjectives(g)
}

// ShowLevelObjectives displays the objectives for the current level
func ShowLevelObjectives(g *state.Game) {
	logMessage(g, "Roll the ball to the GOAL{goal} in the SUBTLE{%dx%d} maze.", g.Grid.Rows(), g.Grid.Cols())
}
