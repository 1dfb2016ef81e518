package hexglow

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilesListsBuiltIns(t *testing.T) {
	got := Profiles()
	want := []string{ProfileDefault, ProfileLowPower, ProfileReducedMotion}
	if len(got) != len(want) {
		t.Fatalf("Profiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Profiles() = %v, want %v", got, want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.EnableGrid || !cfg.EnableNoise {
		t.Error("default profile must enable grid and noise")
	}
	if cfg.EasingFactor != 0.08 {
		t.Errorf("EasingFactor = %f, want 0.08", cfg.EasingFactor)
	}
	if cfg.CellSize != 26 {
		t.Errorf("CellSize = %f, want 26", cfg.CellSize)
	}
	if cfg.RenderMode != RenderModeAuto {
		t.Errorf("RenderMode = %v, want auto", cfg.RenderMode)
	}
}

func TestSparseProfileInheritsDefault(t *testing.T) {
	cfg, err := LoadProfile(ProfileReducedMotion)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()

	// Overridden fields.
	if cfg.EasingFactor != 1 {
		t.Errorf("EasingFactor = %f, want 1", cfg.EasingFactor)
	}
	if cfg.HeartbeatInterval != -1 {
		t.Errorf("HeartbeatInterval = %d, want -1", cfg.HeartbeatInterval)
	}
	if cfg.EnableNoise {
		t.Error("reduced-motion must disable noise")
	}
	if cfg.FadeInMillis != -1 {
		t.Errorf("FadeInMillis = %d, want -1", cfg.FadeInMillis)
	}

	// Inherited fields.
	if cfg.TopColor != def.TopColor || cfg.CellColor != def.CellColor {
		t.Error("omitted colors must inherit from the default profile")
	}
	if cfg.FadeRadius != def.FadeRadius {
		t.Errorf("FadeRadius = %f, want inherited %f", cfg.FadeRadius, def.FadeRadius)
	}
}

func TestLoadProfileLowPower(t *testing.T) {
	cfg, err := LoadProfile(ProfileLowPower)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CellSpacing != 1.6 {
		t.Errorf("CellSpacing = %f, want 1.6", cfg.CellSpacing)
	}
	if cfg.MaxDeviceScale != 1 {
		t.Errorf("MaxDeviceScale = %f, want 1", cfg.MaxDeviceScale)
	}
	if cfg.RenderMode != RenderModeCanvas {
		t.Errorf("RenderMode = %v, want canvas", cfg.RenderMode)
	}
}

func TestLoadProfileUnknown(t *testing.T) {
	if _, err := LoadProfile("ultra"); err == nil {
		t.Error("unknown profile must error")
	}
}

func TestLoadProfileFile(t *testing.T) {
	doc := `profiles:
  default:
    cell_size: 40
  night:
    top_color: {r: 0.01, g: 0.01, b: 0.02, a: 1}
    enable_noise: false
`
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadProfileFile(path, "night")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TopColor != (Color{R: 0.01, G: 0.01, B: 0.02, A: 1}) {
		t.Errorf("TopColor = %+v", cfg.TopColor)
	}
	if cfg.EnableNoise {
		t.Error("night profile must disable noise")
	}
	// Fields the document omits inherit from the built-in default.
	if cfg.EasingFactor != 0.08 {
		t.Errorf("EasingFactor = %f, want inherited 0.08", cfg.EasingFactor)
	}

	// A user document missing a built-in name falls back to the built-in set.
	cfg, err = LoadProfileFile(path, ProfileLowPower)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CellSpacing != 1.6 {
		t.Errorf("fallback low-power CellSpacing = %f, want 1.6", cfg.CellSpacing)
	}
}

func TestLoadProfileFileMissing(t *testing.T) {
	if _, err := LoadProfileFile(filepath.Join(t.TempDir(), "nope.yaml"), "default"); err == nil {
		t.Error("missing file must error")
	}
}

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want string
	}{
		{"reduced motion wins", Capabilities{ReducedMotion: true, HardwareThreads: 16, ShaderSupport: true}, ProfileReducedMotion},
		{"dual core", Capabilities{HardwareThreads: 2, ShaderSupport: true, DeviceScale: 1}, ProfileLowPower},
		{"no shader hi-dpi", Capabilities{HardwareThreads: 8, ShaderSupport: false, DeviceScale: 2}, ProfileLowPower},
		{"no shader lo-dpi", Capabilities{HardwareThreads: 8, ShaderSupport: false, DeviceScale: 1}, ProfileDefault},
		{"capable host", Capabilities{HardwareThreads: 8, ShaderSupport: true, DeviceScale: 2}, ProfileDefault},
		{"unknown threads", Capabilities{HardwareThreads: 0, ShaderSupport: true, DeviceScale: 1}, ProfileDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectProfile(tt.caps); got != tt.want {
				t.Errorf("DetectProfile(%+v) = %q, want %q", tt.caps, got, tt.want)
			}
		})
	}
}
