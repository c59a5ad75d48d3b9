package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/heat"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	t.Cleanup(func() { preset, configFile = "", "" })

	cmd := &cobra.Command{Use: "test"}
	addConstructionFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestResolveConfig_PresetAndFlags(t *testing.T) {
	cfg, err := resolveConfig(newTestCommand(t, "--preset", "paper-explicit", "--n", "40"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.N != 40 || cfg.Scheme != "Explicit" || cfg.MaxTime != 1.0 {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestResolveConfig_FileOverridesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	file := config.DefaultConfig()
	file.N = 33
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(newTestCommand(t, "--preset", "pulse", "--config", path, "--scheme", "Explicit"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.N != 33 || cfg.Scheme != "Explicit" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestResolveConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown scheme", []string{"--scheme", "Spectral"}, heat.ErrUnknownScheme},
		{"two points", []string{"--n", "2"}, heat.ErrResolution},
		{"zero time", []string{"--time", "0"}, heat.ErrMaxTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(newTestCommand(t, tt.args...))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := resolveConfig(newTestCommand(t, "--preset", "missing")); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestBuildSimulation(t *testing.T) {
	cfg := config.GetPreset("paper-implicit")
	s, err := cfg.ParsedScheme()
	if err != nil {
		t.Fatal(err)
	}
	sim, err := buildSimulation(cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	if err := sim.RunUntil(cfg.MaxTime); err != nil {
		t.Fatal(err)
	}
	if mid := sim.Midpoint(); mid <= 0.75 || mid >= 0.80 {
		t.Errorf("midpoint %.6f outside (0.75, 0.80)", mid)
	}

	m := profileMetrics(cfg, sim)
	if _, ok := m["sine_decay_error"]; !ok {
		t.Error("sine runs should record the decay error")
	}
}

func TestRunSchemes(t *testing.T) {
	cfg := config.GetPreset("paper-explicit")
	results, err := runSchemes(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(heat.Schemes) {
		t.Fatalf("expected %d results, got %d", len(heat.Schemes), len(results))
	}

	for _, s := range heat.Schemes {
		t.Run(s.String(), func(t *testing.T) {
			r := resultFor(results, s)
			if r == nil {
				t.Fatalf("no result for %s", s)
			}
			if r.sim.Scheme() != s {
				t.Errorf("result holds a %s simulation", r.sim.Scheme())
			}
			if r.sim.Time() <= cfg.MaxTime {
				t.Errorf("time %.6f should pass max time %.2f", r.sim.Time(), cfg.MaxTime)
			}
			if mid := r.sim.Midpoint(); mid <= 0.75 || mid >= 0.80 {
				t.Errorf("midpoint %.6f outside (0.75, 0.80)", mid)
			}
		})
	}

	explicit, implicit := resultFor(results, heat.Explicit), resultFor(results, heat.Implicit)
	if d := maxDifference(explicit.sim.Solution(), implicit.sim.Solution()); d > 0.05 {
		t.Errorf("schemes differ by %.6f", d)
	}
}

func TestRunSchemes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   error
	}{
		{"two points", func(c *config.Config) { c.N = 2 }, heat.ErrResolution},
		{"zero time", func(c *config.Config) { c.MaxTime = 0 }, heat.ErrMaxTime},
		{"unknown initial", func(c *config.Config) { c.Initial.Kind = "ramp" }, heat.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.GetPreset("paper-explicit")
			tt.modify(cfg)
			results, err := runSchemes(cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if results != nil {
				t.Errorf("expected no results on error, got %d", len(results))
			}
		})
	}
}

func TestCheckPlotMode(t *testing.T) {
	for _, mode := range []string{"", "ascii", "braille", "none"} {
		if err := checkPlotMode(mode); err != nil {
			t.Errorf("mode %q: unexpected error %v", mode, err)
		}
	}
	if err := checkPlotMode("png"); err == nil {
		t.Error("expected error for unknown plot mode")
	}
}
