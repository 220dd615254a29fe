package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const radius = 0.45

// wallAt returns a 2x1.6x2 wall box centered on (x, z) like the maze builder does.
func wallAt(x, z float64) Box {
	return BoxFromCenter(mgl64.Vec3{x, 0.8, z}, mgl64.Vec3{1, 0.8, 1})
}

func TestBox_ClosestPointAndContains(t *testing.T) {
	b := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}
	if got := b.ClosestPoint(mgl64.Vec3{-1, 1, 3}); got != (mgl64.Vec3{0, 1, 2}) {
		t.Errorf("ClosestPoint = %v, want [0 1 2]", got)
	}
	if !b.Contains(mgl64.Vec3{2, 0, 1}) {
		t.Error("Contains(surface point) = false")
	}
	if b.Contains(mgl64.Vec3{2.1, 0, 1}) {
		t.Error("Contains(outside point) = true")
	}
	if got := b.Center(); got != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Center() = %v", got)
	}
}

func TestResolve_ClearSphereUntouched(t *testing.T) {
	boxes := []Box{wallAt(2, 0)}
	in := mgl64.Vec3{0, 0.45, 0}
	out, hit := Resolve(in, radius, boxes)
	if hit || out != in {
		t.Errorf("Resolve = %v,%v, want %v,false", out, hit, in)
	}
}

func TestResolve_PushesAlongSeparation(t *testing.T) {
	// Wall face at x = 1; sphere center 0.3 from it.
	boxes := []Box{wallAt(2, 0)}
	out, hit := Resolve(mgl64.Vec3{0.7, 0.45, 0}, radius, boxes)
	if !hit {
		t.Fatal("Resolve reported no hit")
	}
	want := 1 - radius - DefaultPadding
	if math.Abs(out.X()-want) > 1e-9 || out.Z() != 0 || out.Y() != 0.45 {
		t.Errorf("Resolve = %v, want x=%v", out, want)
	}
}

func TestResolve_NonPenetrationSingleBox(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	box := wallAt(0, 0)
	for i := 0; i < 2000; i++ {
		p := mgl64.Vec3{rng.Float64()*4 - 2, 0.45, rng.Float64()*4 - 2}
		out, _ := Resolve(p, radius, []Box{box})
		if d := box.Distance(out); d < radius-1e-9 {
			t.Fatalf("from %v: resolved to %v, distance %v < radius", p, out, d)
		}
	}
}

func TestResolve_IdempotentAtRest(t *testing.T) {
	boxes := []Box{wallAt(2, 0), wallAt(0, 2), wallAt(-2, 0)}
	p := mgl64.Vec3{0.7, 0.45, 0.9}
	once, _ := Resolve(p, radius, boxes)
	twice, hit := Resolve(once, radius, boxes)
	if hit || twice != once {
		t.Errorf("second Resolve moved %v to %v (hit=%v)", once, twice, hit)
	}
}

func TestResolve_DegenerateChoosesNearestFace(t *testing.T) {
	box := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 1.6, 2}}
	gap := radius + DefaultPadding
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"near min x", mgl64.Vec3{0.2, 0.45, 1}, mgl64.Vec3{-gap, 0.45, 1}},
		{"near max x", mgl64.Vec3{1.9, 0.45, 1}, mgl64.Vec3{2 + gap, 0.45, 1}},
		{"near min z", mgl64.Vec3{1, 0.45, 0.1}, mgl64.Vec3{1, 0.45, -gap}},
		{"near max z", mgl64.Vec3{1.1, 0.45, 1.7}, mgl64.Vec3{1.1, 0.45, 2 + gap}},
		{"on face", mgl64.Vec3{2, 0.45, 0.5}, mgl64.Vec3{2 + gap, 0.45, 0.5}},
		{"dead center ties to min x", mgl64.Vec3{1, 0.45, 1}, mgl64.Vec3{-gap, 0.45, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := Resolve(tt.in, radius, []Box{box})
			if !hit {
				t.Fatal("no hit reported")
			}
			if !got.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("Resolve(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolvePasses_RelaxesWedge(t *testing.T) {
	// A long wall to the east and a pillar corner to the north-west. The pillar
	// pushes the sphere diagonally back into the wall, which one pass cannot undo.
	boxes := []Box{
		{Min: mgl64.Vec3{1, 0, -1}, Max: mgl64.Vec3{3, 1.6, 3}},
		{Min: mgl64.Vec3{-1, 0, 1}, Max: mgl64.Vec3{0.2, 1.6, 3}},
	}
	p := mgl64.Vec3{0.5, 0.45, 0.8}

	single, _ := Resolve(p, radius, boxes)
	if pen := Penetration(single, radius, boxes); pen < 0.01 {
		t.Fatalf("single pass penetration = %v, expected a leftover overlap", pen)
	}

	multi, hit := ResolvePasses(p, radius, boxes, 6)
	if !hit {
		t.Fatal("ResolvePasses reported no hit")
	}
	if pen := Penetration(multi, radius, boxes); pen > 0 {
		t.Errorf("after 6 passes penetration = %v, want 0", pen)
	}
}

func TestResolver_PassesBelowOneRunOnce(t *testing.T) {
	boxes := []Box{wallAt(2, 0)}
	p := mgl64.Vec3{0.7, 0.45, 0}
	want, _ := Resolve(p, radius, boxes)
	got, _ := Resolver{Padding: DefaultPadding}.Resolve(p, radius, boxes)
	if got != want {
		t.Errorf("zero-pass resolver = %v, want %v", got, want)
	}
}

func TestNear_FiltersByDistance(t *testing.T) {
	boxes := []Box{wallAt(2, 0), wallAt(6, 0), wallAt(0, -2)}
	near := Near(boxes, mgl64.Vec3{0, 0.45, 0}, 1.5)
	if len(near) != 2 {
		t.Fatalf("len(Near) = %d, want 2", len(near))
	}
	for _, b := range near {
		if b == boxes[1] {
			t.Error("far box kept")
		}
	}
}
