package hexglow

import (
	"math"
	"time"
)

// frameScheduler decides, once per tick, whether the render pass needs to
// run. Two coarse signals are ORed together:
//
//   - motion: the eased pointer moved more than epsilon (per axis) since the
//     last committed paint;
//   - heartbeat: every N ticks regardless of motion, so time-based layers
//     refresh under a static pointer.
//
// A tick where neither fires skips the paint entirely but still counts: the
// animation loop never stops itself while the engine is running. Rendering
// cost is paid only when it is visually necessary.
type frameScheduler struct {
	epsilon   float64
	heartbeat int // <= 0 disables the heartbeat

	tick         int
	lastRendered Vec2
	hasRendered  bool
	forced       bool
}

func newFrameScheduler(epsilon float64, heartbeat int) *frameScheduler {
	return &frameScheduler{epsilon: epsilon, heartbeat: heartbeat}
}

// Force requests a paint on the next tick regardless of motion. Used after
// grid rebuilds and surface resizes.
func (s *frameScheduler) Force() {
	s.forced = true
}

// ShouldRender advances the tick counter and reports whether this tick needs
// a paint given the current eased pointer position. The decision and the
// commit are split: call MarkRendered only after the paint succeeds, so a
// failed frame is retried on the next tick.
func (s *frameScheduler) ShouldRender(current Vec2) bool {
	s.tick++

	if s.forced || !s.hasRendered {
		return true
	}
	if math.Abs(current.X-s.lastRendered.X) > s.epsilon ||
		math.Abs(current.Y-s.lastRendered.Y) > s.epsilon {
		return true
	}
	if s.heartbeat > 0 && s.tick%s.heartbeat == 0 {
		return true
	}
	return false
}

// MarkRendered commits a successful paint at the given pointer position.
func (s *frameScheduler) MarkRendered(current Vec2) {
	s.lastRendered = current
	s.hasRendered = true
	s.forced = false
}

// Tick returns the number of ticks seen so far.
func (s *frameScheduler) Tick() int {
	return s.tick
}

// throttle gates comparatively expensive work (layout queries, surface
// reallocation) to a minimum interval, independent of the frame scheduler.
// Such work only needs eventual consistency.
type throttle struct {
	min  time.Duration
	last time.Time
	now  func() time.Time // replaced in tests
}

func newThrottle(min time.Duration) *throttle {
	return &throttle{min: min, now: time.Now}
}

// Allow reports whether enough time has passed since the last allowed call,
// and if so, records this call. The first call is always allowed.
func (t *throttle) Allow() bool {
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.min {
		return false
	}
	t.last = now
	return true
}
