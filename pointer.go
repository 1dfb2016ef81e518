package hexglow

import "github.com/hajimehoshi/ebiten/v2"

// pointerAdapter normalizes raw pointer input into a target coordinate in
// surface space. It is a small inbox: host-side calls (injection) write the
// latest value, and the engine reads it exactly once per tick — no handler
// ever mutates engine state mid-render.
type pointerAdapter struct {
	injected *Vec2
}

// inject overrides the real cursor with a synthetic position until clear is
// called. Used by tests and by hosts that already track the pointer
// themselves (e.g. embedding the background under custom input handling).
func (p *pointerAdapter) inject(x, y float64) {
	v := Vec2{X: x, Y: y}
	p.injected = &v
}

// clear removes the synthetic pointer; subsequent ticks read the real cursor.
func (p *pointerAdapter) clear() {
	p.injected = nil
}

// target returns this tick's pointer target: the cursor position while it is
// over the surface, or the surface center once it leaves. Relaxing the
// target to the center makes the glow drift home through the easing tracker
// with no special casing in the renderer.
func (p *pointerAdapter) target(bounds Rect) Vec2 {
	var pos Vec2
	if p.injected != nil {
		pos = *p.injected
	} else {
		x, y := ebiten.CursorPosition()
		pos = Vec2{X: float64(x), Y: float64(y)}
	}
	if bounds.Contains(pos.X, pos.Y) {
		return pos
	}
	return bounds.Center()
}

// monitorDeviceScale returns the current monitor's device pixel ratio,
// defaulting to 1 when no monitor is available (headless tests).
func monitorDeviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}
