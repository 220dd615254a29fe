package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/state"
)

// LevelText is the top HUD line, e.g. "Level 3 | Best 5"
func LevelText(g *state.Game) string {
	return gotext.Get("Level %d | Best %d", g.Level(), g.Progress.BestLevel())
}

// ModeText names the active camera
func ModeText(g *state.Game) string {
	return gotext.Get("Mode: %s", gotext.Get(g.Camera.Mode.String()))
}

// StatusText is the objective line. It may contain markup.
func StatusText(g *state.Game) string {
	if !g.HasWon {
		return gotext.Get("Reach the goal! (Press ACTION{C} to toggle camera)")
	}
	if g.Config.Levels.AutoAdvance && !g.Progress.AtMax() {
		return gotext.Get("WIN{Win}! Next level coming up")
	}
	return gotext.Get("WIN{Win}! Press ACTION{N} for the next level or ACTION{R} to replay")
}

// GlowIntensity is the light strength around the ball for a normalized speed.
func GlowIntensity(speed01 float64) float64 {
	return 1.2 + speed01
}

// HelpLines lists the bindings as marked-up "ACTION{key}: name" lines, one per
// action, in action order.
func HelpLines(b input.Bindings) []string {
	byAction := b.ByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		if a != input.ActionNone {
			actions = append(actions, a)
		}
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := make([]string, 0, len(byAction[a]))
		for _, code := range byAction[a] {
			keys = append(keys, fmt.Sprintf("ACTION{%s}", keyLabel(code)))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", strings.Join(keys, " "), gotext.Get(input.ActionName(a))))
	}
	return lines
}

// keyLabel turns a key code into something short enough for the help pane.
func keyLabel(code string) string {
	switch code {
	case "arrow_up":
		return "Up"
	case "arrow_down":
		return "Down"
	case "arrow_left":
		return "Left"
	case "arrow_right":
		return "Right"
	case "ctrl_c":
		return "Ctrl C"
	case "escape":
		return "Esc"
	case "enter":
		return "Enter"
	case "space":
		return "Space"
	}
	return strings.ToUpper(code)
}
