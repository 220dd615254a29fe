package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// fallbackForward is used when the camera looks straight up or down.
var fallbackForward = mgl64.Vec3{0, 0, -1}

// Basis is a pair of unit vectors in the XZ plane that input is expressed in.
type Basis struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

// BasisFromCamera flattens a camera's view direction onto the ground plane.
// When the flattened vector is too short to normalize the basis faces -Z.
func BasisFromCamera(viewDir mgl64.Vec3) Basis {
	flat := mgl64.Vec3{viewDir.X(), 0, viewDir.Z()}
	if flat.Dot(flat) < 1e-4 {
		flat = fallbackForward
	}
	f := flat.Normalize()
	return Basis{
		Forward: f,
		Right:   mgl64.Vec3{-f.Z(), 0, f.X()},
	}
}

// BasisFromYaw returns the basis for a heading measured from +Z toward +X.
func BasisFromYaw(yaw float64) Basis {
	return BasisFromCamera(mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)})
}

// Apply turns a 2D intent (x to the right, y forward) into a world direction.
func (b Basis) Apply(x, y float64) mgl64.Vec3 {
	return b.Right.Mul(x).Add(b.Forward.Mul(y))
}

// Heading returns the yaw angle of a horizontal vector, matching BasisFromYaw.
func Heading(v mgl64.Vec3) float64 {
	return math.Atan2(v.X(), v.Z())
}
