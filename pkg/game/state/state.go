// Package state holds the simulation context of one game. Everything that
// changes while playing lives on a Game value, so several games can run side
// by side (tests, headless runs) without sharing anything.
package state

import (
	"math/rand"

	"github.com/google/uuid"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/camera"
	"mazeroll/pkg/game/config"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/generator"
	"mazeroll/pkg/game/physics"
	"mazeroll/pkg/game/progress"
	"mazeroll/pkg/game/worldmap"
)

// Game represents the state of one maze run
type Game struct {
	RunID  uuid.UUID
	Config config.Config

	// Collaborators
	Generator generator.GridGenerator
	Mapping   worldmap.Mapping
	Progress  *progress.Tracker
	Events    *events.Queue
	Camera    *camera.Camera
	Params    physics.Params

	// Seeds each level; a level's own seed is drawn from here at load time.
	Rng       *rand.Rand
	LevelSeed int64

	// Current level
	Grid   *world.Grid
	Layout worldmap.Layout
	Player physics.Body

	HasWon bool
	WonAt  float64 // Clock value when the goal was reached

	Clock     float64 // simulated seconds since the level loaded
	LastRoll  float64 // Clock value of the last Rolling event, negative if none
	LastStep  physics.StepResult
	TickCount int

	Messages []string

	Quit bool // set when the player asked to leave
}

// NewGame creates a game with its collaborators but no level loaded yet.
// The seed drives every level generated by this game.
func NewGame(cfg config.Config, store progress.Store, seed int64) *Game {
	cfg.Normalize()
	return &Game{
		RunID:     uuid.New(),
		Config:    cfg,
		Generator: generator.NewBacktracker(cfg.Maze),
		Mapping:   worldmap.Scaled{CellSize: cfg.World.CellSize},
		Progress:  progress.NewTracker(store, cfg.Levels.Start, cfg.Levels.Max),
		Events:    events.NewQueue(),
		Camera:    camera.New(cfg.Camera),
		Params:    physics.ParamsFromConfig(cfg),
		Rng:       rand.New(rand.NewSource(seed)),
		LastRoll:  -1,
		Messages:  make([]string, 0),
	}
}

// Level returns the level being played
func (g *Game) Level() int {
	return g.Progress.CurrentLevel()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// PlayerCell returns the grid cell under the ball
func (g *Game) PlayerCell() world.Coord {
	row, col := g.Mapping.WorldToCell(g.Player.Position)
	return world.Coord{Row: row, Col: col}
}

// GoalDistance returns the horizontal distance from the ball to the goal
func (g *Game) GoalDistance() float64 {
	d := g.Player.Position.Sub(g.Layout.Goal)
	d[1] = 0
	return d.Len()
}
