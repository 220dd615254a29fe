package input

import "github.com/zyedidia/generic/mapset"

// MoveState is the held state of the four movement controls.
type MoveState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Any reports whether any movement control is held.
func (m MoveState) Any() bool {
	return m.Forward || m.Back || m.Left || m.Right
}

// Held tracks which held actions are currently down.
type Held struct {
	down mapset.Set[Action]
}

// NewHeld creates an empty held-action tracker
func NewHeld() *Held {
	return &Held{down: mapset.New[Action]()}
}

// Press marks an action as down. Discrete actions are ignored.
func (h *Held) Press(a Action) {
	if a.IsHeld() {
		h.down.Put(a)
	}
}

// Release marks an action as up
func (h *Held) Release(a Action) {
	h.down.Remove(a)
}

// IsDown reports whether the action is held
func (h *Held) IsDown(a Action) bool {
	return h.down.Has(a)
}

// Clear releases everything, e.g. when the window loses focus.
func (h *Held) Clear() {
	h.down = mapset.New[Action]()
}

// Move returns the movement controls as four booleans.
func (h *Held) Move() MoveState {
	return MoveState{
		Forward: h.IsDown(ActionMoveForward),
		Back:    h.IsDown(ActionMoveBack),
		Left:    h.IsDown(ActionStrafeLeft),
		Right:   h.IsDown(ActionStrafeRight),
	}
}

// Turn returns -1, 0 or 1 for the held turn keys (positive turns right).
func (h *Held) Turn() float64 {
	t := 0.0
	if h.IsDown(ActionTurnRight) {
		t++
	}
	if h.IsDown(ActionTurnLeft) {
		t--
	}
	return t
}
