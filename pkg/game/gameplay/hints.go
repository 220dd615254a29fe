package gameplay

import (
	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/state"
)

// ShowMovementHint reminds the player how to move until the ball first rolls
func ShowMovementHint(g *state.Game) {
	if g.Grid == nil || g.TickCount > 0 {
		return
	}
	logMessage(g, "Press ACTION{WASD} or the arrow keys to roll.")
}

// ShowRouteHint tells the player which way the shortest route to the goal
// leaves the ball's cell and how long it is.
func ShowRouteHint(g *state.Game) {
	if g.Grid == nil {
		return
	}
	if g.HasWon {
		logMessage(g, "You are already at the GOAL{goal}.")
		return
	}

	path := world.ShortestPath(g.Grid, g.PlayerCell(), g.Grid.Goal())
	if len(path) < 2 {
		logMessage(g, "The GOAL{goal} is right here.")
		return
	}

	dir, ok := stepDirection(path[0], path[1])
	if !ok {
		return
	}
	logMessage(g, "The goal is LEVEL{%d} cells away, head LEVEL{%s}.", len(path)-1, translate(dir.String()))
}

// stepDirection returns the direction between two adjacent cells.
func stepDirection(from, to world.Coord) (world.Direction, bool) {
	for _, dir := range world.AllDirections() {
		if from.Step(dir, 1) == to {
			return dir, true
		}
	}
	return world.North, false
}
