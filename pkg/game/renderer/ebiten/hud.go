package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazeroll/pkg/game/menu"
	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/state"
)

// drawHUD draws the level line, mode, objective, speed gauge, messages and
// the optional help panel.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, g *state.Game) {
	if e.sansFontSource == nil {
		ebitenutil.DebugPrintAt(screen, renderer.LevelText(g)+"  "+renderer.ModeText(g), 8, 8)
		ebitenutil.DebugPrintAt(screen, renderer.StripMarkup(renderer.StatusText(g)), 8, 24)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	face := e.getSansFontFace()
	lineH := face.Size * 1.4

	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, colorPanelBackground, false)
	e.drawText(screen, renderer.LevelText(g), 16, 10, colorLevel, face)
	e.drawText(screen, renderer.ModeText(g), 16, 10+lineH, colorSubtle, face)

	status := renderer.StatusText(g)
	statusW := markupWidth(status, face)
	e.drawMarkup(screen, status, (float64(w)-statusW)/2, 10, face)

	e.drawSpeedGauge(screen, float64(w)-196, 14, 180, 10, g.LastStep.Speed01)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), w-76, 36)

	// Messages, newest at the bottom
	msgs := g.Messages
	if len(msgs) > maxMessages {
		msgs = msgs[len(msgs)-maxMessages:]
	}
	y := float64(h) - 16 - lineH*float64(len(msgs))
	for _, msg := range msgs {
		e.drawMarkup(screen, msg, 16, y, face)
		y += lineH
	}

	if e.showHelp {
		e.drawHelp(screen)
	}
}

// drawSpeedGauge draws the ball's normalized speed as a filled bar.
func (e *EbitenRenderer) drawSpeedGauge(screen *ebiten.Image, x, y, width, height, speed01 float64) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, colorSubtle, false)
	if speed01 > 0 {
		vector.DrawFilledRect(screen, float32(x+1), float32(y+1), float32((width-2)*min(speed01, 1)), float32(height-2), colorSpeedBar, false)
	}
}

// drawHelp draws the key bindings in a panel on the right.
func (e *EbitenRenderer) drawHelp(screen *ebiten.Image) {
	if e.monoFontSource == nil {
		return
	}
	face := e.getMonoFontFace()
	lineH := face.Size * 1.35
	lines := append(renderer.HelpLines(e.bindings), "ACTION{F1}: "+gotext.Get("Help"))

	width := 0.0
	for _, l := range lines {
		width = max(width, markupWidth(l, face))
	}
	w := screen.Bounds().Dx()
	x := float64(w) - width - 40
	y := float64(hudHeight) + 16
	vector.DrawFilledRect(screen, float32(x-12), float32(y-8), float32(width+24), float32(lineH*float64(len(lines))+16), colorPanelBackground, false)
	for _, l := range lines {
		e.drawMarkup(screen, l, x, y, face)
		y += lineH
	}
}

// drawMenu dims the view and draws the menu in a centred panel.
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, m *menu.Menu) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorMenuShade, false)

	if e.sansFontSource == nil {
		y := 8
		for i, item := range m.Items() {
			prefix := "  "
			if i == m.Selected() {
				prefix = "> "
			}
			ebitenutil.DebugPrintAt(screen, prefix+item.GetLabel(), 8, y)
			y += 16
		}
		return
	}

	face := e.getSansFontFace()
	lineH := face.Size * 1.8
	items := m.Items()
	instructions := m.Instructions()

	width := max(text.Advance(m.Title(), face), text.Advance(instructions, face))
	for _, item := range items {
		width = max(width, text.Advance("> "+item.GetLabel(), face))
	}
	width += 48
	height := lineH * float64(len(items)+3)
	x := (float64(w) - width) / 2
	y := (float64(h) - height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, colorSubtle, false)

	e.drawText(screen, m.Title(), x+24, y+lineH*0.5, colorLevel, face)
	row := y + lineH*1.5
	for i, item := range items {
		label, col := "  "+item.GetLabel(), colorText
		switch {
		case i == m.Selected():
			label, col = "> "+item.GetLabel(), colorAction
			vector.DrawFilledRect(screen, float32(x+8), float32(row-lineH*0.15), float32(width-16), float32(lineH*0.9), colorMenuHighlight, false)
		case !item.IsSelectable():
			col = colorSubtle
		}
		e.drawText(screen, label, x+24, row, col, face)
		row += lineH
	}
	e.drawText(screen, instructions, x+24, row+lineH*0.2, colorSubtle, face)
}

// drawText draws plain text with its top-left corner at x, y.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawMarkup draws marked-up text, colouring each segment by its style.
func (e *EbitenRenderer) drawMarkup(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace) {
	for _, seg := range renderer.Segments(s) {
		e.drawText(screen, seg.Text, x, y, hudColor(seg.Style), face)
		x += text.Advance(seg.Text, face)
	}
}

// markupWidth measures marked-up text as drawMarkup would lay it out.
func markupWidth(s string, face *text.GoTextFace) float64 {
	width := 0.0
	for _, seg := range renderer.Segments(s) {
		width += text.Advance(seg.Text, face)
	}
	return width
}
