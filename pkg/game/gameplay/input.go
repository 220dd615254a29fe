package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/camera"
	"mazeroll/pkg/game/devtools"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/state"
)

// ProcessIntent handles a discrete intent from the tiered input system. Held
// actions (movement and turning) are sampled into Controls by the host instead.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		logMessage(g, "%s", gotext.Get("Goodbye!"))
		g.Quit = true
		return

	case engineinput.ActionToggleCamera:
		mode := g.Camera.Toggle(g.Player.Facing)
		g.Events.Push(events.CameraToggled{FirstPerson: mode == camera.FirstPerson})
		logMessage(g, "Mode: %s", gotext.Get(mode.String()))
		return

	case engineinput.ActionRestart:
		RestartLevel(g)
		return

	case engineinput.ActionNextLevel:
		if !g.HasWon {
			logMessage(g, "DENIED{Reach the goal first}.")
			return
		}
		AdvanceLevel(g)
		return

	case engineinput.ActionConfirm:
		// Continue after a win; nothing to confirm otherwise
		if g.HasWon {
			AdvanceLevel(g)
		}
		return

	case engineinput.ActionOpenMenu:
		// Menus belong to the host
		return

	case engineinput.ActionResetProgress:
		ResetProgress(g)
		return

	case engineinput.ActionHint:
		ShowRouteHint(g)
		return

	case engineinput.ActionMapDump:
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Map dumped to %s", path)
		}
		return

	case engineinput.ActionCopySummary:
		summary, err := devtools.CopySummary(g)
		if err != nil {
			logMessage(g, "Copy failed: %v", err)
		} else {
			logMessage(g, "Copied: %s", summary)
		}
		return

	case engineinput.ActionSnapshot:
		filename, err := devtools.SaveSnapshotHTML(g)
		if err != nil {
			logMessage(g, "Snapshot failed: %v", err)
		} else {
			logMessage(g, "Snapshot saved to %s", filename)
		}
		return

	case engineinput.ActionDevArena:
		LoadGrid(g, devtools.DevArena(), 0)
		g.ClearMessages()
		logMessage(g, "Developer arena loaded.")
		return
	}

	if intent.Action.IsHeld() {
		return
	}
	logMessage(g, "%s", gotext.Get("Unknown command"))
}
