package hexglow

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseSource produces values in [-1, 1] over the plane, animated by t in
// seconds. The overlay layer samples one on a coarse grid, never per pixel.
type NoiseSource interface {
	Sample(x, y, t float64) float64
}

// newNoiseSource returns the source for a NoiseMode.
func newNoiseSource(mode NoiseMode, seed int64) NoiseSource {
	switch mode {
	case NoiseModeSimplex:
		return &simplexNoise{noise: opensimplex.New(seed)}
	default:
		return sineNoise{}
	}
}

// sineNoise is band-limited synthetic noise: a sum of a few sine terms at
// increasing frequency and decreasing amplitude. Not true Perlin noise, and
// deliberately so: it is cheap, smooth, and has no visible tiling at the
// coarse sampling step the overlay uses.
type sineNoise struct{}

const sineOctaves = 4

func (sineNoise) Sample(x, y, t float64) float64 {
	var v, norm float64
	amp := 1.0
	freq := 1.0
	for i := 0; i < sineOctaves; i++ {
		phase := float64(i) * 1.7
		v += amp *
			math.Sin(x*0.013*freq+t*0.7+phase) *
			math.Sin(y*0.011*freq-t*0.5+phase)
		norm += amp
		amp *= 0.5
		freq *= 1.9
	}
	return v / norm
}

// simplexNoise adapts OpenSimplex noise, using the time axis as the third
// dimension so the field drifts instead of scrolling.
type simplexNoise struct {
	noise opensimplex.Noise
}

func (s *simplexNoise) Sample(x, y, t float64) float64 {
	return s.noise.Eval3(x*0.008, y*0.008, t*0.15)
}
