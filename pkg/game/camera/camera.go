// Package camera holds the two viewpoints of the game: a fixed top-down view
// of the whole maze and a first-person view that follows the ball.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/game/config"
)

// Mode selects the active viewpoint.
type Mode int

const (
	TopDown Mode = iota
	FirstPerson
)

func (m Mode) String() string {
	if m == FirstPerson {
		return "First Person"
	}
	return "Top-Down"
}

// Camera is the view state. Yaw is measured from +Z toward +X, so a yaw of
// zero looks down +Z; pitch is positive looking up.
type Camera struct {
	Mode  Mode
	Yaw   float64
	Pitch float64

	cfg config.Camera
}

// New creates a top-down camera
func New(cfg config.Camera) *Camera {
	return &Camera{Mode: TopDown, cfg: cfg}
}

// IsFirstPerson reports whether the first-person view is active
func (c *Camera) IsFirstPerson() bool {
	return c.Mode == FirstPerson
}

// Toggle switches views. Entering first person looks along facing with a level pitch.
func (c *Camera) Toggle(facing float64) Mode {
	if c.Mode == TopDown {
		c.Mode = FirstPerson
		c.Yaw = facing
		c.Pitch = 0
	} else {
		c.Mode = TopDown
	}
	return c.Mode
}

// Reset levels the view and looks along yaw, keeping the mode.
func (c *Camera) Reset(yaw float64) {
	c.Yaw = wrapAngle(yaw)
	c.Pitch = 0
}

// Look applies a mouse delta in pixels. It does nothing in the top-down view.
func (c *Camera) Look(dx, dy float64) {
	if c.Mode != FirstPerson {
		return
	}
	c.Yaw = wrapAngle(c.Yaw - dx*c.cfg.MouseSensitivity)
	c.Pitch = mgl64.Clamp(c.Pitch-dy*c.cfg.MouseSensitivity, -c.cfg.PitchLimit, c.cfg.PitchLimit)
}

// Turn rotates the first-person view by dir * TurnSpeed * dt; dir > 0 turns right.
func (c *Camera) Turn(dir, dt float64) {
	if c.Mode != FirstPerson || dir == 0 {
		return
	}
	c.Yaw = wrapAngle(c.Yaw - dir*c.cfg.TurnSpeed*dt)
}

// Forward returns the view direction. The top-down view looks straight down.
func (c *Camera) Forward() mgl64.Vec3 {
	if c.Mode == TopDown {
		return mgl64.Vec3{0, -1, 0}
	}
	cp := math.Cos(c.Pitch)
	return mgl64.Vec3{math.Sin(c.Yaw) * cp, math.Sin(c.Pitch), math.Cos(c.Yaw) * cp}
}

// Eye returns the first-person eye position for a ball at p.
func (c *Camera) Eye(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), c.cfg.EyeHeight, p.Z()}
}

// FOV returns the horizontal field of view in radians
func (c *Camera) FOV() float64 {
	return mgl64.DegToRad(c.cfg.FOV)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
