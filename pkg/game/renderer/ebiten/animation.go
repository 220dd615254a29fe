package ebiten

import (
	"image/color"
	"math"
	"math/rand"

	"mazeroll/pkg/game/events"
)

// apply reacts to the events of one tick.
func (f *effects) apply(evs []events.Event) {
	for _, ev := range evs {
		switch ev := ev.(type) {
		case events.WallContact:
			f.shake(bumpShake, bumpShake)
		case events.GoalReached:
			f.shake(winShake, winShake)
			f.flashLeft = winFlash
		case events.PlayerMoved:
			f.roll += ev.RollAngle
		case events.LevelLoaded:
			*f = effects{}
		}
	}
}

// shake starts a camera shake unless a stronger one is already running.
func (f *effects) shake(intensity, duration float64) {
	if f.shakeLeft > 0 && f.shakeIntensity*f.shakeLeft/f.shakeDuration >= intensity {
		return
	}
	f.shakeIntensity = intensity
	f.shakeDuration = duration
	f.shakeLeft = duration
}

// step advances timers by dt.
func (f *effects) step(dt, speed01 float64) {
	f.shakeLeft = math.Max(0, f.shakeLeft-dt)
	f.flashLeft = math.Max(0, f.flashLeft-dt)
	f.speed01 = speed01
	f.bobPhase = math.Mod(f.bobPhase+dt*headBobFreq, 2*math.Pi)
}

// shakeOffset returns a random offset in world units that fades out with the shake.
func (f *effects) shakeOffset() (x, y float64) {
	if f.shakeLeft <= 0 || f.shakeDuration <= 0 {
		return 0, 0
	}
	s := f.shakeIntensity * f.shakeLeft / f.shakeDuration
	return (rand.Float64()*2 - 1) * s, (rand.Float64()*2 - 1) * s
}

// headBob is the vertical eye offset while rolling.
func (f *effects) headBob() float64 {
	return math.Sin(f.bobPhase) * headBobAmp * f.speed01
}

// flashAlpha is the strength of the win flash, 0 when none is showing.
func (f *effects) flashAlpha() float64 {
	return f.flashLeft / winFlash
}

// pulsingGoalColor returns the goal colour pulsing between 50% and 100%
// brightness on a sine wave of the game clock.
func pulsingGoalColor(clock float64) color.Color {
	phase := math.Mod(clock, goalPulsePeriod) / goalPulsePeriod
	pulse := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return scaleColor(colorGoal, 0.5+0.5*pulse)
}

// scaleColor multiplies the RGB channels of c by k, keeping alpha.
func scaleColor(c color.RGBA, k float64) color.RGBA {
	k = math.Max(0, math.Min(1, k))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

// withAlpha returns c with its alpha set to a (0..1), premultiplying RGB as
// image/color expects.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}
