package menu

import (
	"github.com/leonelquinteros/gotext"

	engineinput "mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/gameplay"
	"mazeroll/pkg/game/state"
)

// PauseAction represents the action type for pause menu items.
type PauseAction int

const (
	PauseActionResume PauseAction = iota
	PauseActionRestart
	PauseActionToggleCamera
	PauseActionNextLevel
	PauseActionResetProgress
	PauseActionQuit
)

// PauseMenuItem represents a menu item in the pause menu.
type PauseMenuItem struct {
	Label      string
	Action     PauseAction
	Selectable bool
}

// GetLabel returns the display label for this menu item.
func (m *PauseMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *PauseMenuItem) IsSelectable() bool {
	return m.Selectable
}

// GetHelpText returns help text for this menu item.
func (m *PauseMenuItem) GetHelpText() string {
	switch m.Action {
	case PauseActionResume:
		return gotext.Get("Back to the maze")
	case PauseActionRestart:
		return gotext.Get("Start this level again")
	case PauseActionToggleCamera:
		return gotext.Get("Switch between the map and the ball's view")
	case PauseActionNextLevel:
		return gotext.Get("Go on to the next level")
	case PauseActionResetProgress:
		return gotext.Get("Forget all progress and start from the first level")
	case PauseActionQuit:
		return gotext.Get("Exit the game")
	default:
		return ""
	}
}

// PauseMenuHandler handles the pause menu. Items that act on the game are
// routed through gameplay.ProcessIntent so the menu and the keys agree.
type PauseMenuHandler struct {
	g *state.Game

	// Reset needs a second activation
	resetArmed bool
}

// NewPauseMenu opens the pause menu for g.
func NewPauseMenu(g *state.Game) *Menu {
	return Open(&PauseMenuHandler{g: g})
}

// GetTitle returns the menu title.
func (h *PauseMenuHandler) GetTitle() string {
	return gotext.Get("Paused")
}

// GetMenuItems returns the pause menu items. Next Level is only selectable
// once the goal has been reached.
func (h *PauseMenuHandler) GetMenuItems() []MenuItem {
	reset := gotext.Get("Reset Progress")
	if h.resetArmed {
		reset = gotext.Get("Confirm Reset")
	}
	return []MenuItem{
		&PauseMenuItem{Label: gotext.Get("Resume"), Action: PauseActionResume, Selectable: true},
		&PauseMenuItem{Label: gotext.Get("Restart Level"), Action: PauseActionRestart, Selectable: true},
		&PauseMenuItem{Label: gotext.Get("Toggle Camera"), Action: PauseActionToggleCamera, Selectable: true},
		&PauseMenuItem{Label: gotext.Get("Next Level"), Action: PauseActionNextLevel, Selectable: h.g.HasWon},
		&PauseMenuItem{Label: reset, Action: PauseActionResetProgress, Selectable: true},
		&PauseMenuItem{Label: gotext.Get("Quit"), Action: PauseActionQuit, Selectable: true},
	}
}

// OnActivate is called when an item is activated.
func (h *PauseMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	pauseItem, ok := item.(*PauseMenuItem)
	if !ok {
		return false, ""
	}
	if pauseItem.Action != PauseActionResetProgress {
		h.resetArmed = false
	}

	switch pauseItem.Action {
	case PauseActionResume:
		return true, ""
	case PauseActionRestart:
		h.apply(engineinput.ActionRestart)
	case PauseActionToggleCamera:
		h.apply(engineinput.ActionToggleCamera)
	case PauseActionNextLevel:
		h.apply(engineinput.ActionNextLevel)
	case PauseActionResetProgress:
		if !h.resetArmed {
			h.resetArmed = true
			return false, gotext.Get("Activate again to reset all progress")
		}
		h.resetArmed = false
		h.apply(engineinput.ActionResetProgress)
	case PauseActionQuit:
		h.apply(engineinput.ActionQuit)
	}
	return true, ""
}

func (h *PauseMenuHandler) apply(a engineinput.Action) {
	gameplay.ProcessIntent(h.g, engineinput.Intent{Action: a})
}
