package hexglow

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// RenderMode selects the rendering backend. Exactly one backend is active per
// engine; the shader and canvas paths are alternatives, never composed.
type RenderMode uint8

const (
	// RenderModeAuto probes shader support at construction time and falls
	// back to the canvas backend when compilation fails.
	RenderModeAuto RenderMode = iota
	// RenderModeCanvas draws every layer on the CPU-built mesh path.
	RenderModeCanvas
	// RenderModeShader draws the gradient, noise, and highlight in a single
	// Kage fragment shader. The hexagon tessellation is not available in
	// this mode.
	RenderModeShader
)

// NoiseMode selects the noise function for the overlay layer.
type NoiseMode uint8

const (
	// NoiseModeSine sums a few sine terms at increasing frequency and
	// decreasing amplitude. Band-limited, cheap, and deterministic.
	NoiseModeSine NoiseMode = iota
	// NoiseModeSimplex samples OpenSimplex noise seeded by Config.NoiseSeed.
	NoiseModeSimplex
)

// Config holds every tunable of an Engine. All fields are read once at [New]
// time and never mutated afterwards. Zero numeric fields and zero-value
// colors fall back to the documented defaults; out-of-range values are
// clamped into their valid range.
type Config struct {
	// TopColor and BottomColor are the endpoints of the diagonal base
	// gradient, top-left to bottom-right.
	TopColor    Color `yaml:"top_color"`
	BottomColor Color `yaml:"bottom_color"`

	// HighlightColor tints the pointer-centered radial glow.
	HighlightColor Color `yaml:"highlight_color"`
	// HighlightOpacity is the glow's center opacity in [0, 1]. Default 0.5.
	HighlightOpacity float64 `yaml:"highlight_opacity"`
	// HighlightRadius is the glow's outer radius in surface units. Default 360.
	HighlightRadius float64 `yaml:"highlight_radius"`

	// EasingFactor controls how fast the displayed pointer chases the real
	// one, in (0, 1]. Values near 1 snap, values near 0 drift. Default 0.08.
	EasingFactor float64 `yaml:"easing_factor"`

	// EnableGrid toggles the hexagon tessellation layer.
	EnableGrid bool `yaml:"enable_grid"`
	// CellSize is the hexagon circumradius in surface units. Default 26.
	CellSize float64 `yaml:"cell_size"`
	// CellSpacing thins the grid for performance; 1 is a tight tessellation,
	// larger values spread cells apart. Clamped to >= 1.
	CellSpacing float64 `yaml:"cell_spacing"`
	// CellColor is the hexagon outline color.
	CellColor Color `yaml:"cell_color"`
	// CellLineWidth is the outline stroke width. Default 1.5.
	CellLineWidth float64 `yaml:"cell_line_width"`
	// CellOpacity is the outline opacity of a cell directly under the
	// pointer, in [0, 1]. Default 0.45.
	CellOpacity float64 `yaml:"cell_opacity"`
	// FadeRadius is the distance at which cell opacity reaches zero.
	// Cells beyond 1.5x this radius are culled before any work. Default 320.
	FadeRadius float64 `yaml:"fade_radius"`

	// EnableNoise toggles the tiled noise overlay.
	EnableNoise bool `yaml:"enable_noise"`
	// NoiseMode selects the noise function. Default NoiseModeSine.
	NoiseMode NoiseMode `yaml:"noise_mode"`
	// NoiseIntensity is the overlay's global strength in [0, 1]. Default 0.06.
	NoiseIntensity float64 `yaml:"noise_intensity"`
	// NoiseStep is the coarse sampling grid pitch in surface units; noise is
	// sampled per tile, never per pixel. Default 48.
	NoiseStep float64 `yaml:"noise_step"`
	// NoiseSeed seeds NoiseModeSimplex. NoiseModeSine ignores it.
	NoiseSeed int64 `yaml:"noise_seed"`

	// MotionEpsilon is the displayed-pointer movement (per axis, in surface
	// units) below which a frame is considered static. Default 1.
	MotionEpsilon float64 `yaml:"motion_epsilon"`
	// HeartbeatInterval forces a repaint every N ticks even with a static
	// pointer, so time-based layers keep moving. 0 uses the default of 30;
	// negative disables the heartbeat entirely.
	HeartbeatInterval int `yaml:"heartbeat_interval"`

	// RebuildThreshold is the surface width/height change, in units, that
	// triggers a grid rebuild. Smaller resizes keep the current cells.
	// Default 100.
	RebuildThreshold float64 `yaml:"rebuild_threshold"`
	// ResizeThrottleMillis is the minimum interval between surface size and
	// device scale recomputations. Default 500.
	ResizeThrottleMillis int `yaml:"resize_throttle_ms"`
	// ViewportMargin is the buffer, in units, added around the visible
	// window when culling cells against it. Default 64.
	ViewportMargin float64 `yaml:"viewport_margin"`

	// MaxDeviceScale caps the device pixel ratio applied to the owned
	// surface. Default (and recommended maximum) 2.
	MaxDeviceScale float64 `yaml:"max_device_scale"`

	// FadeInMillis is the alpha ramp duration after Start. 0 uses the
	// default of 600; negative skips the fade.
	FadeInMillis int `yaml:"fade_in_ms"`

	// RenderMode selects the backend. Default RenderModeAuto.
	RenderMode RenderMode `yaml:"render_mode"`
}

// Defaults for zero-valued Config fields.
const (
	defaultEasingFactor     = 0.08
	defaultCellSize         = 26.0
	defaultCellLineWidth    = 1.5
	defaultCellOpacity      = 0.45
	defaultFadeRadius       = 320.0
	defaultHighlightRadius  = 360.0
	defaultHighlightOpacity = 0.5
	defaultNoiseIntensity   = 0.06
	defaultNoiseStep        = 48.0
	defaultMotionEpsilon    = 1.0
	defaultHeartbeat        = 30
	defaultRebuildThresh    = 100.0
	defaultResizeThrottleMs = 500
	defaultViewportMargin   = 64.0
	defaultMaxDeviceScale   = 2.0
	defaultFadeInMs         = 600
)

// Default colors: a dark navy-to-violet gradient with an ice-blue glow.
var (
	defaultTopColor       = Color{R: 0.05, G: 0.07, B: 0.13, A: 1}
	defaultBottomColor    = Color{R: 0.12, G: 0.07, B: 0.20, A: 1}
	defaultCellColor      = Color{R: 0.45, G: 0.75, B: 1.00, A: 1}
	defaultHighlightColor = Color{R: 0.50, G: 0.65, B: 1.00, A: 1}
)

// normalize returns a copy of c with zero fields replaced by defaults and
// out-of-range fields clamped to their invariants.
func (c Config) normalize() Config {
	if c.TopColor == (Color{}) {
		c.TopColor = defaultTopColor
	}
	if c.BottomColor == (Color{}) {
		c.BottomColor = defaultBottomColor
	}
	if c.CellColor == (Color{}) {
		c.CellColor = defaultCellColor
	}
	if c.HighlightColor == (Color{}) {
		c.HighlightColor = defaultHighlightColor
	}

	if c.EasingFactor <= 0 {
		c.EasingFactor = defaultEasingFactor
	} else if c.EasingFactor > 1 {
		c.EasingFactor = 1
	}

	if c.HighlightOpacity == 0 {
		c.HighlightOpacity = defaultHighlightOpacity
	}
	c.HighlightOpacity = clamp01(c.HighlightOpacity)
	if c.HighlightRadius <= 0 {
		c.HighlightRadius = defaultHighlightRadius
	}

	if c.CellSize <= 0 {
		c.CellSize = defaultCellSize
	}
	if c.CellSpacing < 1 {
		c.CellSpacing = 1
	}
	if c.CellLineWidth <= 0 {
		c.CellLineWidth = defaultCellLineWidth
	}
	if c.CellOpacity == 0 {
		c.CellOpacity = defaultCellOpacity
	}
	c.CellOpacity = clamp01(c.CellOpacity)
	if c.FadeRadius <= 0 {
		c.FadeRadius = defaultFadeRadius
	}

	if c.NoiseIntensity == 0 {
		c.NoiseIntensity = defaultNoiseIntensity
	}
	c.NoiseIntensity = clamp01(c.NoiseIntensity)
	if c.NoiseStep <= 0 {
		c.NoiseStep = defaultNoiseStep
	}

	if c.MotionEpsilon <= 0 {
		c.MotionEpsilon = defaultMotionEpsilon
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = defaultHeartbeat
	}
	if c.RebuildThreshold <= 0 {
		c.RebuildThreshold = defaultRebuildThresh
	}
	if c.ResizeThrottleMillis <= 0 {
		c.ResizeThrottleMillis = defaultResizeThrottleMs
	}
	if c.ViewportMargin <= 0 {
		c.ViewportMargin = defaultViewportMargin
	}
	if c.MaxDeviceScale <= 0 || c.MaxDeviceScale > defaultMaxDeviceScale {
		c.MaxDeviceScale = defaultMaxDeviceScale
	}
	if c.FadeInMillis == 0 {
		c.FadeInMillis = defaultFadeInMs
	}
	return c
}

// resizeThrottle returns the resize throttle as a duration.
func (c Config) resizeThrottle() time.Duration {
	return time.Duration(c.ResizeThrottleMillis) * time.Millisecond
}

// --- YAML enum encoding ---

var renderModeNames = map[RenderMode]string{
	RenderModeAuto:   "auto",
	RenderModeCanvas: "canvas",
	RenderModeShader: "shader",
}

// String returns the YAML/profile name of the mode.
func (m RenderMode) String() string {
	if s, ok := renderModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RenderMode(%d)", uint8(m))
}

// MarshalYAML encodes the mode as its name.
func (m RenderMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mode name. Unknown names are an error.
func (m *RenderMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for mode, name := range renderModeNames {
		if name == s {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown render mode %q", s)
}

var noiseModeNames = map[NoiseMode]string{
	NoiseModeSine:    "sine",
	NoiseModeSimplex: "simplex",
}

// String returns the YAML/profile name of the mode.
func (m NoiseMode) String() string {
	if s, ok := noiseModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("NoiseMode(%d)", uint8(m))
}

// MarshalYAML encodes the mode as its name.
func (m NoiseMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mode name. Unknown names are an error.
func (m *NoiseMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	for mode, name := range noiseModeNames {
		if name == s {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown noise mode %q", s)
}
