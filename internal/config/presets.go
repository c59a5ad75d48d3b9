package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"paper-explicit": {
		N: 80, Scheme: "Explicit", MaxTime: 1.0,
		Initial: InitialConfig{Kind: InitSine, Amplitude: 1, Wavenumber: 0.5},
	},
	"paper-implicit": {
		N: 80, Scheme: "Implicit", MaxTime: 1.0,
		Initial: InitialConfig{Kind: InitSine, Amplitude: 1, Wavenumber: 0.5},
	},
	"long": {
		N: 180, Scheme: "Implicit", MaxTime: 10.0,
		Initial: InitialConfig{Kind: InitSine, Amplitude: 1, Wavenumber: 0.5},
	},
	"pulse": {
		N: 128, Scheme: "Implicit", MaxTime: 2.0,
		Initial: InitialConfig{Kind: InitGaussian, Amplitude: 1, Center: math.Pi, Width: 0.3},
	},
	"block": {
		N: 96, Scheme: "Explicit", MaxTime: 0.5,
		Initial: InitialConfig{Kind: InitStep, Amplitude: 1, Center: math.Pi, Width: 1.0},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
