// Package ebiten provides an Ebiten-based graphical renderer for the maze game.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/menu"
	"mazeroll/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It owns the frame
// loop: Update samples input and ticks the game, Draw paints the active view.
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the help panel
	sansFontSource *text.GoTextFaceSource // Sans-serif font for HUD text

	// Cached font faces (recreated when the UI scale changes)
	cachedUIFontSize float64
	cachedMonoFace   *text.GoTextFace
	cachedSansFace   *text.GoTextFace

	// Current game, set by Run
	game *state.Game

	bindings engineinput.Bindings
	held     *engineinput.Held

	// Mouse look
	cursorCaptured bool
	cursorValid    bool // last cursor position is usable for a delta
	lastCursorX    int
	lastCursorY    int

	fx   effects
	bump *events.Throttle // spaces out wall contact shakes

	showHelp bool
	menu     *menu.Menu // open pause menu, nil while playing

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// effects is the presentation state driven by game events.
type effects struct {
	shakeIntensity float64 // world units
	shakeDuration  float64
	shakeLeft      float64
	flashLeft      float64 // seconds of win flash remaining
	bobPhase       float64
	speed01        float64
	roll           float64 // accumulated roll angle for the ball marking
}
