package hexglow

import "testing"

func TestPointerAdapterInjection(t *testing.T) {
	bounds := Rect{Width: 800, Height: 600}
	var p pointerAdapter

	p.inject(120, 90)
	if got := p.target(bounds); got != (Vec2{X: 120, Y: 90}) {
		t.Errorf("target = %+v, want injected (120, 90)", got)
	}

	// Outside the surface the target relaxes to the center.
	p.inject(-40, 300)
	if got := p.target(bounds); got != bounds.Center() {
		t.Errorf("target = %+v, want center %+v", got, bounds.Center())
	}
	p.inject(400, 601)
	if got := p.target(bounds); got != bounds.Center() {
		t.Errorf("target = %+v, want center %+v", got, bounds.Center())
	}

	// Edges count as inside.
	p.inject(800, 600)
	if got := p.target(bounds); got != (Vec2{X: 800, Y: 600}) {
		t.Errorf("target = %+v, want edge (800, 600)", got)
	}
}

func TestPointerAdapterClear(t *testing.T) {
	var p pointerAdapter
	p.inject(10, 10)
	p.clear()
	if p.injected != nil {
		t.Error("clear did not remove the injected pointer")
	}
}
