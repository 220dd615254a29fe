package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"mazeroll/pkg/game/config"
	"mazeroll/pkg/game/physics"
)

func newCamera(t *testing.T) *Camera {
	t.Helper()
	return New(config.Default().Camera)
}

func TestToggle_EntersFirstPersonAlongFacing(t *testing.T) {
	c := newCamera(t)
	if c.Forward() != (mgl64.Vec3{0, -1, 0}) {
		t.Fatalf("top-down Forward() = %v", c.Forward())
	}

	c.Pitch = 0.4
	if m := c.Toggle(math.Pi / 2); m != FirstPerson {
		t.Fatalf("Toggle() = %v, want First Person", m)
	}
	if c.Yaw != math.Pi/2 || c.Pitch != 0 {
		t.Errorf("yaw/pitch = %v/%v, want π/2 and 0", c.Yaw, c.Pitch)
	}
	if f := c.Forward(); !f.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("Forward() = %v, want +X", f)
	}

	if m := c.Toggle(0); m != TopDown {
		t.Errorf("second Toggle() = %v, want Top-Down", m)
	}
}

func TestForward_MatchesMovementBasis(t *testing.T) {
	c := newCamera(t)
	c.Toggle(0)
	for _, yaw := range []float64{0, 1, -2.5, 3} {
		c.Yaw = yaw
		b := physics.BasisFromCamera(c.Forward())
		want := physics.BasisFromYaw(yaw)
		if !b.Forward.ApproxEqualThreshold(want.Forward, 1e-12) {
			t.Errorf("yaw %v: basis forward %v, want %v", yaw, b.Forward, want.Forward)
		}
	}
}

func TestLook_ClampsPitchAndIgnoresTopDown(t *testing.T) {
	c := newCamera(t)
	c.Look(100, 100)
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Error("Look changed the top-down camera")
	}

	c.Toggle(0)
	c.Look(0, -10000)
	if c.Pitch != 1.15 {
		t.Errorf("Pitch = %v, want clamp 1.15", c.Pitch)
	}
	c.Look(0, 10000)
	if c.Pitch != -1.15 {
		t.Errorf("Pitch = %v, want clamp -1.15", c.Pitch)
	}

	c.Look(500, 0)
	if math.Abs(c.Yaw-(-1)) > 1e-12 {
		t.Errorf("Yaw = %v, want -1", c.Yaw)
	}
}

func TestTurn_WrapsYaw(t *testing.T) {
	c := newCamera(t)
	c.Toggle(3)
	c.Turn(-1, 1) // turn left by TurnSpeed radians
	if c.Yaw < -math.Pi || c.Yaw > math.Pi {
		t.Errorf("Yaw = %v, outside [-π, π]", c.Yaw)
	}
	want := 3 + 2.5 - 2*math.Pi
	if math.Abs(c.Yaw-want) > 1e-9 {
		t.Errorf("Yaw = %v, want %v", c.Yaw, want)
	}
}
