package gameplay

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/events"
	"mazeroll/pkg/game/physics"
	"mazeroll/pkg/game/state"
)

// Controls is what a host samples from its devices once per frame.
type Controls struct {
	Move   input.MoveState
	Turn   float64 // held turn keys, positive turns right
	LookDX float64 // mouse movement in pixels since the last frame
	LookDY float64
}

// Tick advances the game by dt seconds and returns the movement step. Events
// produced along the way are queued on g.Events for the host to drain.
func Tick(g *state.Game, c Controls, dt float64) physics.StepResult {
	if g.Grid == nil {
		return physics.StepResult{}
	}

	dt = mgl64.Clamp(dt, 0, g.Params.MaxDt)
	if math.IsNaN(dt) {
		dt = 0
	}
	g.TickCount++
	g.Clock += dt

	g.Camera.Look(c.LookDX, c.LookDY)
	g.Camera.Turn(c.Turn, dt)

	if g.HasWon {
		g.LastStep = physics.StepResult{Dt: dt}
		if g.Config.Levels.AutoAdvance && g.Clock-g.WonAt >= g.Config.Levels.AutoAdvanceDelay {
			AdvanceLevel(g)
		}
		return g.LastStep
	}

	intent := physics.Intent{
		Forward: c.Move.Forward,
		Back:    c.Move.Back,
		Left:    c.Move.Left,
		Right:   c.Move.Right,
	}
	step := physics.Integrate(&g.Player, intent, g.Camera.Forward(), dt, g.Layout.Walls, g.Params)
	g.LastStep = step

	if step.HitWall {
		g.Events.Push(events.WallContact{Position: g.Player.Position, Speed: step.Speed})
	}

	if step.Moving {
		g.Events.Push(events.PlayerMoved{
			Position:  g.Player.Position,
			Velocity:  g.Player.Velocity,
			RollAngle: step.RollAngle,
			Speed01:   step.Speed01,
		})
		if g.LastRoll < 0 || g.Clock-g.LastRoll >= g.Config.FX.StepInterval {
			g.LastRoll = g.Clock
			g.Events.Push(events.Rolling{Speed01: step.Speed01})
		}
	} else {
		g.LastRoll = -1
	}

	if g.GoalDistance() <= g.Config.Levels.WinDistance {
		win(g)
	}

	return step
}

// win freezes the ball on the goal and reports it.
func win(g *state.Game) {
	g.HasWon = true
	g.WonAt = g.Clock
	g.Player.Velocity = mgl64.Vec3{}
	g.Events.Push(events.GoalReached{Level: g.Level()})

	logMessage(g, "WIN{Win}! You cleared level LEVEL{%d}.", g.Level())
	if !g.Config.Levels.AutoAdvance {
		logMessage(g, "Press ACTION{N} for the next level or ACTION{R} to replay.")
	}
}
