package hexglow

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"runtime"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Built-in profile names.
const (
	ProfileDefault       = "default"
	ProfileReducedMotion = "reduced-motion"
	ProfileLowPower      = "low-power"
)

// profileFile is the top-level YAML structure of a profile document.
type profileFile struct {
	Profiles map[string]Config `yaml:"profiles"`
}

// DefaultConfig returns the built-in default profile. Tweak fields on the
// result before passing it to New.
func DefaultConfig() Config {
	cfg, err := LoadProfile(ProfileDefault)
	if err != nil {
		// The embedded document is part of the build; failing to parse it is
		// a packaging bug, same class as an embedded shader that won't compile.
		panic("hexglow: embedded default profile: " + err.Error())
	}
	return cfg
}

// LoadProfile returns a built-in profile by name, layered on top of the
// default profile so sparse profiles only state what they change.
func LoadProfile(name string) (Config, error) {
	return loadProfileData(defaultsYAML, name)
}

// LoadProfileFile reads a YAML profile document from disk and returns the
// named profile, layered on top of the built-in default. Unknown keys in the
// document are ignored.
func LoadProfileFile(path, name string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read profile file: %w", err)
	}
	return loadProfileData(data, name)
}

// Profiles returns the built-in profile names in sorted order.
func Profiles() []string {
	var file profileFile
	if err := yaml.Unmarshal(defaultsYAML, &file); err != nil {
		return nil
	}
	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadProfileData parses a profile document and extracts one named profile.
// Every profile other than "default" is decoded on top of the default
// profile's values, so omitted fields inherit rather than zero out.
func loadProfileData(data []byte, name string) (Config, error) {
	var raw struct {
		Profiles map[string]yaml.Node `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse profiles: %w", err)
	}

	var cfg Config
	if name != ProfileDefault {
		base, err := loadProfileData(defaultsYAML, ProfileDefault)
		if err != nil {
			return Config{}, err
		}
		cfg = base
	}

	node, ok := raw.Profiles[name]
	if !ok {
		// A user document may override only some profiles; fall back to the
		// built-in set before giving up.
		if !bytes.Equal(data, defaultsYAML) {
			return loadProfileData(defaultsYAML, name)
		}
		return Config{}, fmt.Errorf("unknown profile %q", name)
	}
	if err := node.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse profile %q: %w", name, err)
	}
	return cfg.normalize(), nil
}

// Capabilities describes what the host environment can actually do, measured
// rather than inferred from identity strings. Used by DetectProfile.
type Capabilities struct {
	// HardwareThreads is the number of logical CPUs.
	HardwareThreads int
	// DeviceScale is the monitor's device pixel ratio.
	DeviceScale float64
	// ShaderSupport reports whether the Kage backend compiled.
	ShaderSupport bool
	// ReducedMotion reports a host-level "minimize animation" preference.
	ReducedMotion bool
}

// MeasureCapabilities probes the current process and monitor.
// The shader probe compiles (and caches) the background shader.
func MeasureCapabilities() Capabilities {
	return Capabilities{
		HardwareThreads: runtime.NumCPU(),
		DeviceScale:     monitorDeviceScale(),
		ShaderSupport:   probeShaderSupport(),
	}
}

// DetectProfile maps measured capabilities to a built-in profile name.
// Pure function; pass MeasureCapabilities() for live detection.
func DetectProfile(caps Capabilities) string {
	if caps.ReducedMotion {
		return ProfileReducedMotion
	}
	if caps.HardwareThreads > 0 && caps.HardwareThreads <= 2 {
		return ProfileLowPower
	}
	if !caps.ShaderSupport && caps.DeviceScale > 1.5 {
		// No GPU path and a hi-dpi surface is the worst case for the CPU
		// backend; shrink the workload instead of dropping frames.
		return ProfileLowPower
	}
	return ProfileDefault
}
