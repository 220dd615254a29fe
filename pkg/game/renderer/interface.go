package renderer

import (
	"mazeroll/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleStart
	StyleGoal
	StylePlayer
	StylePath
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleLevel
	StyleWin
)

var markupStyles = map[string]TextStyle{
	"LEVEL":  StyleLevel,
	"GOAL":   StyleGoal,
	"WIN":    StyleWin,
	"DENIED": StyleDenied,
	"SUBTLE": StyleSubtle,
}

// Renderer defines the interface for game rendering backends.
// A backend owns its main loop: it reads input, ticks the game and draws.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Run plays g until the player quits or the window closes
	Run(g *state.Game) error

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return the text as-is
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Run hands g to the current renderer
func Run(g *state.Game) error {
	if Current == nil {
		return nil
	}
	return Current.Run(g)
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(ApplyMarkup(msg, args...))
}
