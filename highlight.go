package hexglow

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// highlightAlpha returns the glow opacity at normalized distance t from the
// center (t = distance/radius). Three stops: full at the center, half at
// mid-radius, zero at the edge, with the outer half smoothed so the glow has
// a soft rim rather than a hard circle.
func highlightAlpha(t float64) float64 {
	switch {
	case t <= 0:
		return 1
	case t >= 1:
		return 0
	case t <= 0.5:
		// Inner segment: 1 -> 0.5, linear.
		return 1 - t
	default:
		// Outer segment: 0.5 -> 0 with smoothstep easing.
		u := (t - 0.5) * 2
		s := u * u * (3 - 2*u)
		return 0.5 * (1 - s)
	}
}

// highlightCache caches generated glow textures keyed by quantized radius,
// so easing jitter in the radius doesn't regenerate pixels every frame.
// Owned by one engine; disposed with it.
type highlightCache struct {
	images map[int]*ebiten.Image
}

// image returns a cached glow texture for the given radius, generating one
// if needed. Radius is quantized to the nearest integer.
func (hc *highlightCache) image(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if hc.images == nil {
		hc.images = make(map[int]*ebiten.Image)
	}
	if img, ok := hc.images[key]; ok {
		return img
	}
	img := generateHighlight(float64(key))
	hc.images[key] = img
	return img
}

// dispose deallocates every cached texture.
func (hc *highlightCache) dispose() {
	for _, img := range hc.images {
		img.Deallocate()
	}
	hc.images = nil
}

// generateHighlight renders a white radial glow with the highlightAlpha
// profile into a (2r x 2r) image. Premultiplied alpha; the renderer tints it
// with the configured color and opacity at draw time.
func generateHighlight(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			t := math.Sqrt(dx*dx+dy*dy) / radius

			a := uint8(highlightAlpha(t) * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}
