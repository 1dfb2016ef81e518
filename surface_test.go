package hexglow

import "testing"

func TestSurfaceEnsure(t *testing.T) {
	var s renderSurface
	defer s.dispose()

	if !s.ensure(320, 240, 1) {
		t.Fatal("first ensure must create the bitmap")
	}
	first := s.img
	if b := s.img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("bitmap = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	// Same pixel dimensions: bitmap is reused.
	if s.ensure(320, 240, 1) {
		t.Error("ensure with unchanged size must not recreate")
	}
	if s.img != first {
		t.Error("bitmap replaced without a size change")
	}

	// Device scale doubles the pixel dimensions.
	if !s.ensure(320, 240, 2) {
		t.Fatal("scale change must recreate")
	}
	if b := s.img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("scaled bitmap = %dx%d, want 640x480", b.Dx(), b.Dy())
	}
	if s.width != 320 || s.height != 240 || s.scale != 2 {
		t.Errorf("logical size = %fx%f scale %f, want 320x240 scale 2", s.width, s.height, s.scale)
	}

	// A logical resize that cancels out in pixels is still a no-op.
	if s.ensure(640, 480, 1) {
		t.Error("equal pixel dimensions must not recreate")
	}
	if s.width != 640 || s.scale != 1 {
		t.Error("logical bookkeeping not updated on pixel no-op")
	}
}

func TestSurfaceEnsureClampsDegenerate(t *testing.T) {
	var s renderSurface
	defer s.dispose()

	s.ensure(0, -5, 0.25)
	if b := s.img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("degenerate sizes gave %dx%d bitmap, want 1x1", b.Dx(), b.Dy())
	}
	if s.scale != 1 {
		t.Errorf("scale = %f, want clamped to 1", s.scale)
	}
}

func TestSurfaceBoundsAndDispose(t *testing.T) {
	var s renderSurface
	s.ensure(100, 50, 2)
	if got := s.bounds(); got != (Rect{Width: 100, Height: 50}) {
		t.Errorf("bounds() = %+v, want logical 100x50", got)
	}
	s.dispose()
	s.dispose() // safe twice
	if s.img != nil || s.width != 0 {
		t.Error("dispose must clear the surface")
	}
}
