package hexglow

import "github.com/hajimehoshi/ebiten/v2"

// renderSurface is the engine's owned drawable region: an offscreen bitmap
// sized to the observed content area, tracked in both logical units and
// device pixels through a capped device-scale factor. The dirty-frame
// scheduler repaints it only when needed; every other frame just blits it.
type renderSurface struct {
	img    *ebiten.Image
	width  float64 // logical units
	height float64
	scale  float64 // device pixels per logical unit
}

// ensure resizes the bitmap for the given logical size and device scale and
// reports whether it was (re)created. No-op while the pixel dimensions are
// unchanged.
func (s *renderSurface) ensure(w, h, scale float64) bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if scale < 1 {
		scale = 1
	}
	pw := int(w * scale)
	ph := int(h * scale)
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			s.width, s.height, s.scale = w, h, scale
			return false
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(pw, ph)
	s.width, s.height, s.scale = w, h, scale
	return true
}

// bounds returns the surface rectangle in logical units.
func (s *renderSurface) bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// dispose releases the bitmap. Safe to call repeatedly.
func (s *renderSurface) dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height, s.scale = 0, 0, 0
}
