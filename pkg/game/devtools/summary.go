package devtools

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"mazeroll/pkg/game/state"
)

// ErrNoClipboard is returned when no clipboard utility is available.
var ErrNoClipboard = errors.New("clipboard unavailable")

// clipboardWrite is a variable so tests can capture what would be copied.
var clipboardWrite = clipboard.WriteAll

// Summary is a one-line description of the current level, enough to
// reproduce it with cmd/mazegen.
func Summary(g *state.Game) string {
	rows, cols := 0, 0
	if g.Grid != nil {
		rows, cols = g.Grid.Rows(), g.Grid.Cols()
	}
	return fmt.Sprintf("level=%d best=%d seed=%d size=%dx%d run=%s",
		g.Level(), g.Progress.BestLevel(), g.LevelSeed, rows, cols, g.RunID)
}

// CopySummary puts the level summary on the system clipboard and returns it.
func CopySummary(g *state.Game) (string, error) {
	s := Summary(g)
	if clipboard.Unsupported {
		return s, ErrNoClipboard
	}
	if err := clipboardWrite(s); err != nil {
		return s, fmt.Errorf("copy summary: %w", err)
	}
	return s, nil
}
