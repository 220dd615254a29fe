// Package input turns raw device codes into game actions. Keyboard hosts
// report codes, Bindings map them to actions, and Held tracks the actions
// that act while down.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin cannot be put into raw mode.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	in io.Reader
	fd int
}

// NewKeyReader reads keys from stdin
func NewKeyReader() *KeyReader {
	return &KeyReader{in: os.Stdin, fd: int(os.Stdin.Fd())}
}

// newKeyReaderFrom reads keys from an arbitrary stream without touching terminal modes.
func newKeyReaderFrom(r io.Reader) *KeyReader {
	return &KeyReader{in: r, fd: -1}
}

// ReadKey blocks for one key press and returns its code, e.g. "w",
// "arrow_up", "enter", "space", "escape", "f5" or "ctrl_c".
func (k *KeyReader) ReadKey() (string, error) {
	if k.fd >= 0 {
		oldState, err := term.MakeRaw(k.fd)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotTerminal, err)
		}
		defer term.Restore(k.fd, oldState)
	}

	b1, err := k.readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return k.readEscape()
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 >= 32 && b1 < 127:
		return strings.ToLower(string(b1)), nil
	default:
		return "", nil
	}
}

func (k *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(k.in, buf)
	return buf[0], err
}

// readEscape decodes what follows an ESC byte. A lone ESC is "escape".
// Both CSI (ESC [) and SS3 (ESC O) sequences are accepted.
func (k *KeyReader) readEscape() (string, error) {
	b2, err := k.readByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := k.readByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Function keys arrive as ESC [ <n> ~
	if b3 >= '0' && b3 <= '9' {
		num := []byte{b3}
		for {
			b, err := k.readByte()
			if err != nil {
				return "", err
			}
			if b == '~' {
				break
			}
			num = append(num, b)
		}
		switch string(num) {
		case "15":
			return "f5", nil
		case "18":
			return "f7", nil
		case "19":
			return "f8", nil
		case "20":
			return "f9", nil
		case "21":
			return "f10", nil
		case "24":
			return "f12", nil
		}
	}

	// Unknown escape sequence, discard it
	return "", nil
}
