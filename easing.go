package hexglow

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tracker converges a displayed point toward a target point with exponential
// smoothing, applied independently per axis once per tick:
//
//	current += (target - current) * factor
//
// Convergence is geometric: the distance to the target shrinks by (1-factor)
// each step and never reaches exactly zero, so consumers compare against a
// closeness epsilon (see frameScheduler) rather than equality. The caller
// guarantees Factor is in (0, 1]; New clamps Config.EasingFactor before
// constructing one.
type Tracker struct {
	Current Vec2
	Target  Vec2
	Factor  float64
}

// Step advances Current one tick toward Target.
func (t *Tracker) Step() {
	t.Current.X += (t.Target.X - t.Current.X) * t.Factor
	t.Current.Y += (t.Target.Y - t.Current.Y) * t.Factor
}

// Snap moves Current directly onto Target, skipping convergence.
// Used when the surface is first sized so the highlight doesn't sweep in
// from the origin.
func (t *Tracker) Snap() {
	t.Current = t.Target
}

// Fader ramps a single alpha value between 0 and 1 over time. The engine uses
// one to fade the whole background in after Start instead of popping it onto
// the screen. A zero Fader is opaque and idle.
type Fader struct {
	tween *gween.Tween
	alpha float64
}

// newFader returns a fader resting at the given alpha.
func newFader(alpha float64) *Fader {
	return &Fader{alpha: clamp01(alpha)}
}

// FadeTo starts a ramp from the current alpha to target over duration
// seconds. A non-positive duration jumps immediately.
func (f *Fader) FadeTo(target float64, duration float32) {
	target = clamp01(target)
	if duration <= 0 {
		f.tween = nil
		f.alpha = target
		return
	}
	f.tween = gween.New(float32(f.alpha), float32(target), duration, ease.OutQuad)
}

// Update advances the ramp by dt seconds and reports whether the fader is
// idle (no ramp in progress).
func (f *Fader) Update(dt float32) bool {
	if f.tween == nil {
		return true
	}
	v, finished := f.tween.Update(dt)
	f.alpha = float64(v)
	if finished {
		f.tween = nil
	}
	return f.tween == nil
}

// Alpha returns the current alpha in [0, 1].
func (f *Fader) Alpha() float64 {
	return f.alpha
}
