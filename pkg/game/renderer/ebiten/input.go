package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/gameplay"
	"mazeroll/pkg/game/menu"
	"mazeroll/pkg/game/state"
)

// keyCodes maps binding codes to Ebiten keys.
var keyCodes = map[string]ebiten.Key{
	"arrow_up":    ebiten.KeyArrowUp,
	"arrow_down":  ebiten.KeyArrowDown,
	"arrow_left":  ebiten.KeyArrowLeft,
	"arrow_right": ebiten.KeyArrowRight,
	"enter":       ebiten.KeyEnter,
	"escape":      ebiten.KeyEscape,
	"space":       ebiten.KeySpace,
	"f1":          ebiten.KeyF1,
	"f2":          ebiten.KeyF2,
	"f3":          ebiten.KeyF3,
	"f4":          ebiten.KeyF4,
	"f5":          ebiten.KeyF5,
	"f6":          ebiten.KeyF6,
	"f7":          ebiten.KeyF7,
	"f8":          ebiten.KeyF8,
	"f9":          ebiten.KeyF9,
	"f10":         ebiten.KeyF10,
	"f11":         ebiten.KeyF11,
	"f12":         ebiten.KeyF12,
	"a":           ebiten.KeyA,
	"b":           ebiten.KeyB,
	"c":           ebiten.KeyC,
	"d":           ebiten.KeyD,
	"e":           ebiten.KeyE,
	"f":           ebiten.KeyF,
	"g":           ebiten.KeyG,
	"h":           ebiten.KeyH,
	"i":           ebiten.KeyI,
	"j":           ebiten.KeyJ,
	"k":           ebiten.KeyK,
	"l":           ebiten.KeyL,
	"m":           ebiten.KeyM,
	"n":           ebiten.KeyN,
	"o":           ebiten.KeyO,
	"p":           ebiten.KeyP,
	"q":           ebiten.KeyQ,
	"r":           ebiten.KeyR,
	"s":           ebiten.KeyS,
	"t":           ebiten.KeyT,
	"u":           ebiten.KeyU,
	"v":           ebiten.KeyV,
	"w":           ebiten.KeyW,
	"x":           ebiten.KeyX,
	"y":           ebiten.KeyY,
	"z":           ebiten.KeyZ,
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	g := e.game
	if g == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.showHelp = !e.showHelp
	}

	intents := e.checkInput()
	if e.menu != nil {
		// Paused: the menu takes every key and the game does not tick
		e.releaseCursor()
		for _, intent := range intents {
			e.menu.HandleIntent(intent)
			if e.menu.Closed() {
				e.menu = nil
				break
			}
		}
		if g.Quit {
			return ebiten.Termination
		}
		e.fx.apply(e.bump.Filter(g.Events.Drain(), g.Clock))
		return nil
	}

	for _, intent := range intents {
		if intent.Action == engineinput.ActionOpenMenu {
			e.menu = menu.NewPauseMenu(g)
			e.held.Clear()
			return nil
		}
		if !intent.Action.IsHeld() {
			gameplay.ProcessIntent(g, intent)
		}
	}
	if g.Quit {
		e.releaseCursor()
		return ebiten.Termination
	}

	e.syncCursor(g)
	dx, dy := e.mouseDelta()

	dt := 1 / float64(ebiten.TPS())
	gameplay.Tick(g, gameplay.Controls{
		Move:   e.held.Move(),
		Turn:   e.held.Turn(),
		LookDX: dx,
		LookDY: dy,
	}, dt)

	e.fx.apply(e.bump.Filter(g.Events.Drain(), g.Clock))
	e.fx.step(dt, g.LastStep.Speed01)
	return nil
}

// checkInput refreshes the held actions and returns an intent for every bound
// key pressed this frame, held actions included so menus can use them. Held
// state is dropped while the window is unfocused.
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	e.held.Clear()
	if !ebiten.IsFocused() {
		return nil
	}

	var intents []engineinput.Intent
	for _, code := range e.bindings.Codes() {
		action := e.bindings[code]
		key, ok := keyCodes[code]
		if !ok {
			continue
		}
		if action.IsHeld() && ebiten.IsKeyPressed(key) {
			e.held.Press(action)
		}
		if inpututil.IsKeyJustPressed(key) {
			intents = append(intents, e.bindings.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      code,
				Timestamp: time.Now(),
			})))
		}
	}
	return intents
}

// syncCursor captures the mouse in first person and frees it in the top-down view.
func (e *EbitenRenderer) syncCursor(g *state.Game) {
	want := g.Camera.IsFirstPerson() && ebiten.IsFocused()
	if want == e.cursorCaptured {
		return
	}
	if want {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		e.cursorCaptured = true
		e.cursorValid = false
		return
	}
	e.releaseCursor()
}

func (e *EbitenRenderer) releaseCursor() {
	if e.cursorCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	e.cursorCaptured = false
	e.cursorValid = false
}

// mouseDelta returns how far the captured cursor moved since the last frame.
// The first frame after capture only records the position.
func (e *EbitenRenderer) mouseDelta() (dx, dy float64) {
	if !e.cursorCaptured {
		return 0, 0
	}
	x, y := ebiten.CursorPosition()
	if e.cursorValid {
		dx, dy = float64(x-e.lastCursorX), float64(y-e.lastCursorY)
	}
	e.lastCursorX, e.lastCursorY = x, y
	e.cursorValid = true
	return dx, dy
}
