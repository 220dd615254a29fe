package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/game/config"
)

// Intent is the held state of the four movement controls.
type Intent struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Vector returns the intent as a unit 2D vector (x right, y forward), or zero.
func (i Intent) Vector() (x, y float64) {
	if i.Right {
		x++
	}
	if i.Left {
		x--
	}
	if i.Forward {
		y++
	}
	if i.Back {
		y--
	}
	if l := math.Hypot(x, y); l > 0 {
		return x / l, y / l
	}
	return 0, 0
}

// Active reports whether the intent produces any movement.
func (i Intent) Active() bool {
	x, y := i.Vector()
	return x != 0 || y != 0
}

// Body is the player ball.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Radius   float64
	Facing   float64 // heading of travel in radians, visual only
}

// Params are the movement tunables used by Integrate.
type Params struct {
	MaxSpeed        float64
	Accel           float64
	Decel           float64
	TurnBoost       float64
	BounceDamping   float64
	MaxDt           float64
	RestY           float64
	StopThreshold   float64
	FacingThreshold float64
	Resolver        Resolver
	// BroadPhase limits collision to boxes within this distance of the
	// tentative position. Zero tests every box.
	BroadPhase float64
}

// ParamsFromConfig builds integration parameters from the game configuration.
func ParamsFromConfig(cfg config.Config) Params {
	mv := cfg.Movement
	p := Params{
		MaxSpeed:        mv.MaxSpeed,
		Accel:           mv.Accel,
		Decel:           mv.Decel,
		TurnBoost:       mv.TurnBoost,
		BounceDamping:   mv.BounceDamping,
		MaxDt:           mv.MaxDt,
		RestY:           cfg.Player.RestY,
		StopThreshold:   mv.StopThreshold,
		FacingThreshold: mv.FacingThreshold,
		Resolver:        Resolver{Padding: mv.CollisionPadding, Passes: mv.CollisionPasses},
	}
	// A correction moves the center by at most half a wall plus the radius
	// and padding, so boxes further than that per pass can never be reached.
	perPass := cfg.World.WallSize/2 + cfg.Player.Radius + mv.CollisionPadding
	p.BroadPhase = cfg.Player.Radius + perPass*float64(max(mv.CollisionPasses, 1))
	return p
}

// StepResult describes one integration step.
type StepResult struct {
	HitWall   bool
	Moving    bool    // false once both horizontal velocity components fall under the stop threshold
	Speed     float64 // horizontal speed after the step
	Speed01   float64 // Speed relative to MaxSpeed, clamped to [0,1]
	RollAngle float64 // rotation the ball rolled through this step, radians
	Dt        float64 // the clamped delta actually integrated
}

// Integrate advances the body by dt seconds. forward is the camera view
// direction; the intent is applied in its flattened basis.
func Integrate(body *Body, intent Intent, forward mgl64.Vec3, dt float64, boxes []Box, p Params) StepResult {
	dt = mgl64.Clamp(dt, 0, p.MaxDt)
	if math.IsNaN(dt) {
		dt = 0
	}

	ix, iy := intent.Vector()
	active := ix != 0 || iy != 0

	var desired mgl64.Vec3
	var k float64
	if active {
		desired = BasisFromCamera(forward).Apply(ix, iy).Mul(p.MaxSpeed)
		k = mgl64.Clamp(p.Accel*dt+p.TurnBoost*dt, 0, 1)
	} else {
		k = mgl64.Clamp(p.Decel*dt, 0, 1)
	}

	v := body.Velocity
	v = mgl64.Vec3{
		v.X() + (desired.X()-v.X())*k,
		0,
		v.Z() + (desired.Z()-v.Z())*k,
	}
	if speed := v.Len(); speed > p.MaxSpeed {
		v = v.Mul(p.MaxSpeed / speed)
	}

	next := body.Position.Add(v.Mul(dt))
	next[1] = p.RestY

	candidates := boxes
	if p.BroadPhase > 0 {
		candidates = Near(boxes, next, p.BroadPhase)
	}
	next, hit := p.Resolver.Resolve(next, body.Radius, candidates)
	if hit {
		v = v.Mul(p.BounceDamping)
	}

	body.Position = next
	body.Velocity = v

	speed := v.Len()
	res := StepResult{
		HitWall: hit,
		Moving:  math.Abs(v.X()) >= p.StopThreshold || math.Abs(v.Z()) >= p.StopThreshold,
		Speed:   speed,
		Dt:      dt,
	}
	if p.MaxSpeed > 0 {
		res.Speed01 = mgl64.Clamp(speed/p.MaxSpeed, 0, 1)
	}
	if speed > p.FacingThreshold {
		body.Facing = Heading(v)
		if body.Radius > 0 {
			res.RollAngle = speed * dt / body.Radius
		}
	}
	return res
}
