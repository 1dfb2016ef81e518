package hexglow

import (
	"testing"
	"time"
)

func TestSchedulerFirstTickAlwaysRenders(t *testing.T) {
	s := newFrameScheduler(1, 30)
	if !s.ShouldRender(Vec2{X: 100, Y: 100}) {
		t.Fatal("first tick must render")
	}
}

func TestSchedulerStationaryPointerHeartbeatOnly(t *testing.T) {
	const heartbeat = 30
	s := newFrameScheduler(1, heartbeat)
	p := Vec2{X: 400, Y: 300}

	if !s.ShouldRender(p) {
		t.Fatal("first tick must render")
	}
	s.MarkRendered(p)

	rendered := 0
	for i := 0; i < heartbeat*4; i++ {
		if s.ShouldRender(p) {
			rendered++
			s.MarkRendered(p)
		}
	}
	if rendered != 4 {
		t.Errorf("stationary pointer rendered %d times over %d ticks, want 4 heartbeats", rendered, heartbeat*4)
	}
}

func TestSchedulerMotionRendersEveryTick(t *testing.T) {
	s := newFrameScheduler(1, 30)
	p := Vec2{}
	if !s.ShouldRender(p) {
		t.Fatal("first tick must render")
	}
	s.MarkRendered(p)

	for i := 0; i < 60; i++ {
		p.X += 3 // above epsilon each tick
		if !s.ShouldRender(p) {
			t.Fatalf("tick %d with motion beyond epsilon did not render", i)
		}
		s.MarkRendered(p)
	}
}

func TestSchedulerSubEpsilonMotionSkips(t *testing.T) {
	s := newFrameScheduler(1, 0) // heartbeat disabled
	p := Vec2{X: 10, Y: 10}
	s.ShouldRender(p)
	s.MarkRendered(p)

	// Drift below epsilon relative to the last committed paint.
	if s.ShouldRender(Vec2{X: 10.5, Y: 10.5}) {
		t.Error("sub-epsilon drift must not render")
	}
	if s.ShouldRender(Vec2{X: 9.2, Y: 10}) {
		t.Error("sub-epsilon drift must not render")
	}
	// A step past epsilon on a single axis does.
	if !s.ShouldRender(Vec2{X: 10, Y: 11.5}) {
		t.Error("super-epsilon drift must render")
	}
}

func TestSchedulerDisabledHeartbeatNeverFires(t *testing.T) {
	s := newFrameScheduler(1, -1)
	p := Vec2{X: 5, Y: 5}
	s.ShouldRender(p)
	s.MarkRendered(p)
	for i := 0; i < 500; i++ {
		if s.ShouldRender(p) {
			t.Fatalf("tick %d rendered with heartbeat disabled and no motion", i)
		}
	}
}

func TestSchedulerForce(t *testing.T) {
	s := newFrameScheduler(1, 0)
	p := Vec2{X: 1, Y: 1}
	s.ShouldRender(p)
	s.MarkRendered(p)

	if s.ShouldRender(p) {
		t.Fatal("expected idle tick before Force")
	}
	s.Force()
	if !s.ShouldRender(p) {
		t.Fatal("Force must trigger a render")
	}
	s.MarkRendered(p)
	if s.ShouldRender(p) {
		t.Error("Force must be consumed by MarkRendered")
	}
}

func TestSchedulerRetriesUntilMarked(t *testing.T) {
	s := newFrameScheduler(1, 0)
	p := Vec2{X: 50, Y: 50}

	// Decision without commit: a paint that failed. Every following tick
	// must keep asking for a render.
	for i := 0; i < 3; i++ {
		if !s.ShouldRender(p) {
			t.Fatalf("tick %d did not retry an uncommitted paint", i)
		}
	}
	s.MarkRendered(p)
	if s.ShouldRender(p) {
		t.Error("committed paint with no motion must not render")
	}
}

func TestThrottle(t *testing.T) {
	clock := time.Unix(0, 0)
	th := newThrottle(500 * time.Millisecond)
	th.now = func() time.Time { return clock }

	if !th.Allow() {
		t.Fatal("first call must be allowed")
	}
	clock = clock.Add(200 * time.Millisecond)
	if th.Allow() {
		t.Error("call inside the interval must be blocked")
	}
	clock = clock.Add(400 * time.Millisecond)
	if !th.Allow() {
		t.Error("call past the interval must be allowed")
	}
	clock = clock.Add(499 * time.Millisecond)
	if th.Allow() {
		t.Error("blocked calls must not reset the interval")
	}
	clock = clock.Add(1 * time.Millisecond)
	if !th.Allow() {
		t.Error("exactly the interval must be allowed")
	}
}
