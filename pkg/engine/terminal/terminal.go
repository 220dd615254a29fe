// Package terminal measures the terminal the text renderer draws into and
// works out how much of a maze fits in it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size used when the output is not a terminal (pipes, tests).
const (
	FallbackCols = 80
	FallbackRows = 24
)

// Measurer reports a terminal size in character columns and rows.
type Measurer func() (cols, rows int, err error)

// Stdout measures the terminal attached to standard output.
func Stdout() (cols, rows int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Size is a terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// Measure calls m, or Stdout when m is nil. Errors and empty sizes give the fallback.
func Measure(m Measurer) Size {
	if m == nil {
		m = Stdout
	}
	cols, rows, err := m()
	if err != nil || cols <= 0 || rows <= 0 {
		return Size{Cols: FallbackCols, Rows: FallbackRows}
	}
	return Size{Cols: cols, Rows: rows}
}

// Viewport returns how many maze cells fit in s. Each cell is cellWidth
// columns wide, reservedRows lines go to the HUD and the last column stays
// free so a full row never wraps. The result is at least minRows by minCols.
func (s Size) Viewport(cellWidth, reservedRows, minRows, minCols int) (rows, cols int) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	cols = max(s.Cols/cellWidth-1, minCols)
	rows = max(s.Rows-reservedRows, minRows)
	return rows, cols
}
