package ebiten

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts. A font that fails to load is logged
// and left nil; text drawn with it is skipped.
func (e *EbitenRenderer) loadFonts() {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		log.Printf("Warning: failed to load monospace font: %v", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		log.Printf("Warning: failed to load UI font: %v", err)
	}
}

// getUIFontSize returns the font size for HUD text, scaled with the window height
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.windowHeight) / defaultWindowHeight
	if size < 10 {
		size = 10
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for HUD text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	e.checkFontSize(size)
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
	}
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace font face for the help panel
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	e.checkFontSize(size)
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	}
	return e.cachedMonoFace
}

// checkFontSize drops cached faces built for a different size
func (e *EbitenRenderer) checkFontSize(size float64) {
	if e.cachedUIFontSize != size {
		e.invalidateFontCache()
		e.cachedUIFontSize = size
	}
}

// invalidateFontCache clears cached font faces (call when the UI scale changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
}
