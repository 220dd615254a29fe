package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight

	// Camera (held)
	ActionTurnLeft
	ActionTurnRight

	// Discrete
	ActionToggleCamera
	ActionRestart
	ActionNextLevel
	ActionResetProgress
	ActionHint
	ActionMapDump
	ActionCopySummary
	ActionSnapshot
	ActionDevArena
	ActionConfirm
	ActionOpenMenu
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and terminal raw mode already deliver one event per press, so this
// is a distinct type rather than a filter.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// Bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
type Bindings map[string]Action

// reservedCodes can never be rebound or cleared.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"ctrl_c":      true,
}

// DefaultBindings returns a fresh copy of the stock key layout.
func DefaultBindings() Bindings {
	return Bindings{
		// Movement (arrows and WASD)
		"arrow_up":    ActionMoveForward,
		"w":           ActionMoveForward,
		"arrow_down":  ActionMoveBack,
		"s":           ActionMoveBack,
		"arrow_left":  ActionStrafeLeft,
		"a":           ActionStrafeLeft,
		"arrow_right": ActionStrafeRight,
		"d":           ActionStrafeRight,

		// First-person turning
		"q": ActionTurnLeft,
		"e": ActionTurnRight,

		"c":      ActionToggleCamera,
		"r":      ActionRestart,
		"f5":     ActionRestart,
		"n":      ActionNextLevel,
		"enter":  ActionNextLevel,
		"f8":     ActionResetProgress,
		"h":      ActionHint,
		"f9":     ActionMapDump,
		"f10":    ActionCopySummary,
		"f12":    ActionSnapshot,
		"f7":     ActionDevArena,
		"space":  ActionConfirm,
		"m":      ActionOpenMenu,
		"escape": ActionOpenMenu,
		"ctrl_c": ActionQuit,
	}
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high‑level Intent.
func (b Bindings) MapToIntent(ev DebouncedInput) Intent {
	if act, ok := b[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionToggleCamera:
		return "Toggle Camera"
	case ActionRestart:
		return "Restart Level"
	case ActionNextLevel:
		return "Next Level"
	case ActionResetProgress:
		return "Reset Progress"
	case ActionHint:
		return "Hint"
	case ActionMapDump:
		return "Map Dump"
	case ActionCopySummary:
		return "Copy Summary"
	case ActionSnapshot:
		return "Snapshot"
	case ActionDevArena:
		return "Dev Arena"
	case ActionConfirm:
		return "Confirm"
	case ActionOpenMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// IsHeld reports whether an action acts while its key is down rather than once per press.
func (a Action) IsHeld() bool {
	return a >= ActionMoveForward && a <= ActionTurnRight
}

// ByAction returns the bindings grouped by action.
func (b Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// Codes returns every bound code ordered by action, then by code, so a host
// polling keys produces intents in the same order each frame.
func (b Bindings) Codes() []string {
	codes := make([]string, 0, len(b))
	for code := range b {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if ai, aj := b[codes[i]], b[codes[j]]; ai != aj {
			return ai < aj
		}
		return codes[i] < codes[j]
	})
	return codes
}

// SetSingle replaces all non-reserved bindings for the action with a single code.
func (b Bindings) SetSingle(action Action, code string) {
	for c, a := range b {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(b, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		b[code] = action
	}
}

// ActionByName looks an action up by its ActionName, ignoring case.
func ActionByName(name string) (Action, bool) {
	for a := ActionMoveForward; a <= ActionQuit; a++ {
		if strings.EqualFold(ActionName(a), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// Rebind applies overrides from action name to key code, one key per action.
// Unknown action names are skipped and reported together.
func (b Bindings) Rebind(overrides map[string]string) error {
	var unknown []string
	for name, code := range overrides {
		a, ok := ActionByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		b.SetSingle(a, strings.ToLower(code))
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown actions in key bindings: %s", strings.Join(unknown, ", "))
	}
	return nil
}
