package ebiten

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazeroll/pkg/game/renderer"
	"mazeroll/pkg/game/renderer/raycast"
	"mazeroll/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.game
	if g == nil || g.Grid == nil {
		return
	}

	if g.Camera.IsFirstPerson() {
		e.drawFirstPerson(screen, g)
	} else {
		e.drawTopDown(screen, g)
	}

	if a := e.fx.flashAlpha(); a > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(colorWin, 0.35*a), false)
	}

	e.drawHUD(screen, g)
	if e.menu != nil {
		e.drawMenu(screen, e.menu)
	}
}

// mapTransform converts world X/Z to top-down screen pixels.
type mapTransform struct {
	scale  float64 // pixels per world unit
	ox, oy float64 // screen position of world (minX, minZ)
	minX   float64
	minZ   float64
}

func (m mapTransform) point(x, z float64) (float32, float32) {
	return float32(m.ox + (x-m.minX)*m.scale), float32(m.oy + (z-m.minZ)*m.scale)
}

func (m mapTransform) length(v float64) float32 {
	return float32(v * m.scale)
}

// fitMap fits the whole maze into the screen below the HUD, north up.
func fitMap(g *state.Game, screenWidth, screenHeight int) mapTransform {
	cs := g.Config.World.CellSize
	worldW := float64(g.Grid.Cols()) * cs
	worldD := float64(g.Grid.Rows()) * cs

	availW := float64(screenWidth - mapMargin*2)
	availH := float64(screenHeight - hudHeight - mapMargin*2)
	scale := math.Max(1, math.Min(availW/worldW, availH/worldD))

	return mapTransform{
		scale: scale,
		ox:    (float64(screenWidth) - worldW*scale) / 2,
		oy:    float64(hudHeight) + (float64(screenHeight-hudHeight)-worldD*scale)/2,
		minX:  -cs / 2,
		minZ:  -cs / 2,
	}
}

// drawTopDown draws the maze as seen from above: floor, walls, start ring,
// pulsing goal and the ball with its glow.
func (e *EbitenRenderer) drawTopDown(screen *ebiten.Image, g *state.Game) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	m := fitMap(g, w, h)
	sx, sz := e.fx.shakeOffset()
	m.ox += sx * m.scale
	m.oy += sz * m.scale

	cs := g.Config.World.CellSize
	x0, y0 := m.point(m.minX, m.minZ)
	vector.DrawFilledRect(screen, x0, y0, m.length(float64(g.Grid.Cols())*cs), m.length(float64(g.Grid.Rows())*cs), colorFloor, false)

	for _, b := range g.Layout.Walls {
		bx, by := m.point(b.Min.X(), b.Min.Z())
		vector.DrawFilledRect(screen, bx, by, m.length(b.Max.X()-b.Min.X()), m.length(b.Max.Z()-b.Min.Z()), colorWall, false)
	}

	startX, startY := m.point(g.Layout.Start.X(), g.Layout.Start.Z())
	vector.StrokeCircle(screen, startX, startY, m.length(cs*0.3), 2, colorStart, true)

	goalX, goalY := m.point(g.Layout.Goal.X(), g.Layout.Goal.Z())
	vector.DrawFilledCircle(screen, goalX, goalY, m.length(cs*0.3), pulsingGoalColor(g.Clock), true)

	e.drawBall(screen, g, m)
}

// drawBall draws the glow, the ball and a mark that turns as it rolls.
func (e *EbitenRenderer) drawBall(screen *ebiten.Image, g *state.Game, m mapTransform) {
	p := g.Player
	cx, cy := m.point(p.Position.X(), p.Position.Z())
	r := m.length(p.Radius)

	glow := renderer.GlowIntensity(e.fx.speed01)
	vector.DrawFilledCircle(screen, cx, cy, r*float32(1+0.5*glow), withAlpha(colorGlow, 0.12*glow), true)
	vector.DrawFilledCircle(screen, cx, cy, r, colorBall, true)

	// The mark slides along the heading and wraps, reading as a stripe on a rolling ball.
	heading := mgl64.Vec2{math.Sin(p.Facing), math.Cos(p.Facing)}
	along := math.Sin(e.fx.roll) * p.Radius * 0.6
	mx, my := m.point(p.Position.X()+heading.X()*along, p.Position.Z()+heading.Y()*along)
	vector.DrawFilledCircle(screen, mx, my, r*0.25, colorBallMark, true)
}

// drawFirstPerson raycasts the maze from the ball's eye.
func (e *EbitenRenderer) drawFirstPerson(screen *ebiten.Image, g *state.Game) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	eye := g.Camera.Eye(g.Player.Position)
	eye[1] += e.fx.headBob()
	sx, sy := e.fx.shakeOffset()
	eye[0] += sx * 0.1
	eye[1] += sy * 0.1

	v := raycast.View{
		Width:      w,
		Height:     h,
		FOV:        g.Camera.FOV(),
		Yaw:        g.Camera.Yaw,
		Pitch:      g.Camera.Pitch,
		Eye:        eye,
		WallHeight: g.Config.World.WallHeight,
	}

	horizon := float32(mgl64.Clamp(v.Horizon(), 0, float64(h)))
	vector.DrawFilledRect(screen, 0, 0, float32(w), horizon, colorCeiling, false)
	vector.DrawFilledRect(screen, 0, horizon, float32(w), float32(h)-horizon, colorFloor, false)

	cols := v.Columns(g.Grid, g.Config.World.CellSize)
	for x, c := range cols {
		if !c.Ok {
			continue
		}
		base := colorWall
		if c.Side == raycast.SideX {
			base = colorWallEdge
		}
		shade := raycast.Shade(c.Distance, wallShadeFalloff)
		vector.DrawFilledRect(screen, float32(x), float32(c.Top), 1, float32(c.Bottom-c.Top), scaleColor(base, shade), false)
	}

	e.drawGoalSprite(screen, g, v, cols)

	// Crosshair
	cx, cy := float32(w)/2, float32(h)/2
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, colorSubtle, false)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, colorSubtle, false)
}

// drawGoalSprite draws the goal as a glowing disc when no wall hides its centre.
func (e *EbitenRenderer) drawGoalSprite(screen *ebiten.Image, g *state.Game, v raycast.View, cols []raycast.Column) {
	goal := g.Layout.Goal
	goal[1] = g.Config.World.WallHeight * 0.4
	x, y, depth, ok := v.Project(goal)
	if !ok {
		return
	}
	col := int(x)
	if col < 0 || col >= len(cols) {
		return
	}
	if cols[col].Ok && cols[col].Distance < depth {
		return
	}
	r := float32(g.Config.World.CellSize * 0.3 * v.Focal() / depth)
	c := pulsingGoalColor(g.Clock)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r*1.6, withAlpha(colorGoal, 0.25), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, c, true)
}

// hudColor returns the colour for a markup style
func hudColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleAction:
		return colorAction
	case renderer.StyleActionShort:
		return colorAction
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleLevel:
		return colorLevel
	case renderer.StyleGoal:
		return colorGoal
	case renderer.StyleWin:
		return colorWin
	default:
		return colorText
	}
}
