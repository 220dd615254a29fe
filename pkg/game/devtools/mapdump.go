// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"mazeroll/pkg/engine/world"
	"mazeroll/pkg/game/generator"
	"mazeroll/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// ErrNoLevel is returned when a tool needs a loaded level and there is none.
var ErrNoLevel = errors.New("no level loaded")

// curved is implemented by generators whose difficulty follows a curve.
type curved interface {
	Curve() generator.Curve
}

// cellSymbol returns the single-character symbol for a cell. The player
// overlays everything, then start and goal, then the route.
func cellSymbol(g *state.Game, c, player world.Coord, route mapset.Set[world.Coord]) rune {
	switch {
	case c == player:
		return '@'
	case c == g.Grid.Start():
		return 'S'
	case c == g.Grid.Goal():
		return 'G'
	case !g.Grid.IsOpenAt(c):
		return '#'
	case route.Has(c):
		return '*'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with the player and an optional route overlaid.
func writeMapGrid(w io.Writer, g *state.Game, route mapset.Set[world.Coord]) {
	player := g.PlayerCell()
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(g, world.Coord{Row: row, Col: col}, player, route))
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a full debug dump of the current level: metadata,
// legend, the layout and the shortest route from the ball to the goal.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return ErrNoLevel
	}

	bw := bufio.NewWriter(w)
	rows := g.Grid.Rows()
	cols := g.Grid.Cols()
	player := g.PlayerCell()
	start := g.Grid.Start()
	goal := g.Grid.Goal()
	path := world.ShortestPath(g.Grid, player, goal)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (maze layout, routing, physics) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "run_id: %s\n", g.RunID)
	fmt.Fprintf(bw, "level: %d\n", g.Level())
	fmt.Fprintf(bw, "best_level: %d\n", g.Progress.BestLevel())
	fmt.Fprintf(bw, "level_seed: %d\n", g.LevelSeed)
	fmt.Fprintf(bw, "generator: %s\n", g.Generator.Name())
	if c, ok := g.Generator.(curved); ok {
		d := c.Curve().ForLevel(g.Level())
		fmt.Fprintf(bw, "difficulty_stage: %d\n", d.Stage)
		fmt.Fprintf(bw, "loop_chance: %.3f\n", d.LoopChance)
	}
	fmt.Fprintf(bw, "grid_rows: %d\n", rows)
	fmt.Fprintf(bw, "grid_cols: %d\n", cols)
	fmt.Fprintf(bw, "open_cells: %d\n", g.Grid.Count(world.Open))
	fmt.Fprintf(bw, "wall_boxes: %d\n", len(g.Layout.Walls))
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal); world x=col*cell, z=row*cell\n")
	fmt.Fprintf(bw, "player_cell: %d,%d\n", player.Row, player.Col)
	fmt.Fprintf(bw, "player_position: %.3f,%.3f,%.3f\n", g.Player.Position.X(), g.Player.Position.Y(), g.Player.Position.Z())
	fmt.Fprintf(bw, "player_velocity: %.3f,%.3f,%.3f\n", g.Player.Velocity.X(), g.Player.Velocity.Y(), g.Player.Velocity.Z())
	fmt.Fprintf(bw, "start_cell: %d,%d\n", start.Row, start.Col)
	fmt.Fprintf(bw, "goal_cell: %d,%d\n", goal.Row, goal.Col)
	fmt.Fprintf(bw, "goal_distance: %.3f\n", g.GoalDistance())
	fmt.Fprintf(bw, "has_won: %v\n", g.HasWon)
	fmt.Fprintf(bw, "camera_mode: %s\n", g.Camera.Mode)
	fmt.Fprintf(bw, "clock: %.3f\n", g.Clock)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, ". = open  # = wall  S = start  G = goal  @ = player  * = route to goal")
	fmt.Fprintln(bw, "")

	// --- Map: layout only ---
	fmt.Fprintln(bw, "--- Map (layout) ---")
	writeMapGrid(bw, g, mapset.New[world.Coord]())
	fmt.Fprintln(bw, "")

	// --- Map: with route ---
	route := mapset.New[world.Coord]()
	for _, c := range path {
		route.Put(c)
	}
	fmt.Fprintln(bw, "--- Map (shortest route from player to goal) ---")
	writeMapGrid(bw, g, route)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Route ---")
	if path == nil {
		fmt.Fprintln(bw, "route_length: none")
	} else {
		fmt.Fprintf(bw, "route_length: %d\n", len(path)-1)
	}

	return bw.Flush()
}

// DumpMapToFile writes the map dump to map.txt in the working directory and
// returns its absolute path.
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", ErrNoLevel
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", fmt.Errorf("write %s: %w", absPath, err)
	}
	return absPath, nil
}
