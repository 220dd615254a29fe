package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/state"
)

// translate is a function variable so message formats can be looked up at
// runtime without tripping vet's constant format check.
var translate = gotext.Get

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(translate(msg), a...)
	g.AddMessage(formatted)
}
