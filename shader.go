package hexglow

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundShaderSrc is the Kage fragment program for RenderModeShader: the
// diagonal gradient, band-limited sine noise, and pointer glow evaluated per
// pixel in one pass. The hexagon layer has no shader equivalent; shader mode
// replaces the canvas path rather than composing with it.
const backgroundShaderSrc = `//kage:unit pixels
package main

var Resolution vec2
var Pointer vec2
var Time float
var Radius float
var TopColor vec4
var BottomColor vec4
var HighlightColor vec4
var NoiseIntensity float
var Alpha float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	p := dst.xy

	// Diagonal gradient, top-left to bottom-right.
	t := clamp((p.x/Resolution.x+p.y/Resolution.y)*0.5, 0.0, 1.0)
	c := mix(TopColor.rgb, BottomColor.rgb, t)

	// Band-limited noise: a few sine terms, increasing frequency and
	// decreasing amplitude.
	n := 0.0
	amp := 1.0
	freq := 1.0
	norm := 0.0
	for i := 0; i < 4; i++ {
		phase := float(i) * 1.7
		n += amp * sin(p.x*0.013*freq+Time*0.7+phase) * sin(p.y*0.011*freq-Time*0.5+phase)
		norm += amp
		amp *= 0.5
		freq *= 1.9
	}
	c += vec3(n / norm * NoiseIntensity)

	// Pointer glow: quadratic falloff toward the radius.
	d := distance(p, Pointer)
	g := clamp(1.0-d/Radius, 0.0, 1.0)
	c += HighlightColor.rgb * (g * g * HighlightColor.a)

	return vec4(c*Alpha, Alpha)
}
`

// Shader compilation is a process capability, probed once and cached.
var (
	backgroundShader    *ebiten.Shader
	backgroundShaderErr error
	shaderProbed        bool
)

// compileBackgroundShader compiles (once) and returns the background shader.
func compileBackgroundShader() (*ebiten.Shader, error) {
	if !shaderProbed {
		backgroundShader, backgroundShaderErr = ebiten.NewShader([]byte(backgroundShaderSrc))
		shaderProbed = true
	}
	return backgroundShader, backgroundShaderErr
}

// probeShaderSupport reports whether the shader backend is usable.
func probeShaderSupport() bool {
	_, err := compileBackgroundShader()
	return err == nil
}

// drawShader runs the single-pass shader backend over the full surface.
// view and pointer are in device pixels, like the canvas path.
func (r *renderer) drawShader(dst *ebiten.Image, shader *ebiten.Shader, view Rect, pointer Vec2, phase, alpha, scale float64) {
	cfg := r.cfg
	if scale < 1 {
		scale = 1
	}
	var op ebiten.DrawRectShaderOptions
	op.Uniforms = map[string]any{
		"Resolution":  []float32{float32(view.Width), float32(view.Height)},
		"Pointer":     []float32{float32(pointer.X), float32(pointer.Y)},
		"Time":        float32(phase),
		"Radius":      float32(cfg.HighlightRadius * scale),
		"TopColor":    colorUniform(cfg.TopColor),
		"BottomColor": colorUniform(cfg.BottomColor),
		"HighlightColor": []float32{
			float32(cfg.HighlightColor.R),
			float32(cfg.HighlightColor.G),
			float32(cfg.HighlightColor.B),
			float32(cfg.HighlightColor.A * cfg.HighlightOpacity),
		},
		"NoiseIntensity": noiseUniform(cfg),
		"Alpha":          float32(alpha),
	}
	dst.DrawRectShader(int(view.Width), int(view.Height), shader, &op)
}

func colorUniform(c Color) []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

func noiseUniform(cfg *Config) float32 {
	if !cfg.EnableNoise {
		return 0
	}
	return float32(cfg.NoiseIntensity)
}
