package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/state"
)

// New creates a new Ebiten renderer
func New(bindings engineinput.Bindings) *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		bindings:     bindings,
		held:         engineinput.NewHeld(),
		showHelp:     true,
	}
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Maze Roller")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	e.loadFonts()
}

// Run starts the Ebiten game loop and blocks until the window closes or the
// player quits.
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	e.bump = events.NewThrottle(events.KindWallContact, g.Config.FX.BumpCooldown)
	return ebiten.RunGame(e)
}

// StyleText returns the text as is; colors are applied when the HUD draws
// markup segments.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText resolves markup to plain text
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(renderer.ApplyMarkup(msg, args...))
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}
