// Package physics moves a sphere through a field of axis-aligned wall boxes.
// All vector math uses mgl64; Y is up and the maze lies in the XZ plane.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultPadding is the extra separation added when pushing a sphere out of a box.
const DefaultPadding = 0.01

// degenerateEpsilon is the separation below which the push direction is undefined.
const degenerateEpsilon = 1e-6

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxFromCenter builds a box from its center and half extents
func BoxFromCenter(center, half mgl64.Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// ClosestPoint clamps p into the box
func (b Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl64.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		mgl64.Clamp(p.Z(), b.Min.Z(), b.Max.Z()),
	}
}

// Contains reports whether p lies inside or on the box
func (b Box) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Distance returns the distance from p to the nearest point of the box (0 inside).
func (b Box) Distance(p mgl64.Vec3) float64 {
	return p.Sub(b.ClosestPoint(p)).Len()
}

// Resolver pushes a sphere out of boxes. Each pass visits the boxes in order
// and corrects the center against each one in turn, so a later box may push
// the center slightly back into an earlier one. Extra passes relax that.
type Resolver struct {
	Padding float64
	Passes  int
}

// DefaultResolver runs a single pass with the default padding.
var DefaultResolver = Resolver{Padding: DefaultPadding, Passes: 1}

// Resolve corrects a sphere center against boxes with DefaultResolver.
// It reports whether any box needed a correction.
func Resolve(center mgl64.Vec3, radius float64, boxes []Box) (mgl64.Vec3, bool) {
	return DefaultResolver.Resolve(center, radius, boxes)
}

// ResolvePasses is Resolve repeated for the given number of passes.
func ResolvePasses(center mgl64.Vec3, radius float64, boxes []Box, passes int) (mgl64.Vec3, bool) {
	return Resolver{Padding: DefaultPadding, Passes: passes}.Resolve(center, radius, boxes)
}

// Resolve corrects center against every box. Passes below 1 count as 1, and
// iteration stops early once a pass makes no correction.
func (r Resolver) Resolve(center mgl64.Vec3, radius float64, boxes []Box) (mgl64.Vec3, bool) {
	passes := r.Passes
	if passes < 1 {
		passes = 1
	}

	hitAny := false
	for i := 0; i < passes; i++ {
		var hit bool
		center, hit = r.pass(center, radius, boxes)
		if !hit {
			break
		}
		hitAny = true
	}
	return center, hitAny
}

func (r Resolver) pass(center mgl64.Vec3, radius float64, boxes []Box) (mgl64.Vec3, bool) {
	hit := false
	for _, box := range boxes {
		closest := box.ClosestPoint(center)
		sep := center.Sub(closest)
		dist := sep.Len()
		if dist >= radius {
			continue
		}

		if dist > degenerateEpsilon {
			center = center.Add(sep.Mul((radius - dist + r.Padding) / dist))
		} else {
			center = r.exitNearestFace(center, radius, box)
		}
		hit = true
	}
	return center, hit
}

// exitNearestFace moves a center that lies inside or on box out through the
// vertical face needing the least displacement. Ties go to min-x, max-x, min-z, max-z in that order.
func (r Resolver) exitNearestFace(center mgl64.Vec3, radius float64, box Box) mgl64.Vec3 {
	gap := radius + r.Padding
	candidates := [4]struct {
		depth  float64
		x, z   float64
		alongX bool
	}{
		{center.X() - box.Min.X(), box.Min.X() - gap, 0, true},
		{box.Max.X() - center.X(), box.Max.X() + gap, 0, true},
		{center.Z() - box.Min.Z(), 0, box.Min.Z() - gap, false},
		{box.Max.Z() - center.Z(), 0, box.Max.Z() + gap, false},
	}

	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].depth < candidates[best].depth {
			best = i
		}
	}

	c := candidates[best]
	if c.alongX {
		return mgl64.Vec3{c.x, center.Y(), center.Z()}
	}
	return mgl64.Vec3{center.X(), center.Y(), c.z}
}

// Near returns the boxes whose nearest point lies within reach of center.
// The result shares no storage with boxes.
func Near(boxes []Box, center mgl64.Vec3, reach float64) []Box {
	var out []Box
	for _, b := range boxes {
		if b.Distance(center) <= reach {
			out = append(out, b)
		}
	}
	return out
}

// Penetration returns how far the sphere overlaps the deepest box, or 0 if it
// is clear of all of them.
func Penetration(center mgl64.Vec3, radius float64, boxes []Box) float64 {
	deepest := 0.0
	for _, b := range boxes {
		deepest = math.Max(deepest, radius-b.Distance(center))
	}
	return deepest
}
