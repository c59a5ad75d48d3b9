package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/heatsim/internal/heat"
)

const (
	DefaultN          = 180
	DefaultScheme     = "Implicit"
	DefaultMaxTime    = 10.0
	DefaultAmplitude  = 1.0
	DefaultWavenumber = 0.5
	DefaultWidth      = 0.5
)

// Initial condition kinds.
const (
	InitZero     = "zero"
	InitSine     = "sine"
	InitGaussian = "gaussian"
	InitStep     = "step"
)

// InitialKinds lists the supported initial condition kinds.
var InitialKinds = []string{InitZero, InitSine, InitGaussian, InitStep}

type Config struct {
	N             int           `yaml:"n"`
	Scheme        string        `yaml:"scheme"`
	MaxTime       float64       `yaml:"max_time"`
	Initial       InitialConfig `yaml:"initial"`
	ProgressEvery int           `yaml:"progress_every"`
}

type InitialConfig struct {
	Kind       string  `yaml:"kind"`
	Amplitude  float64 `yaml:"amplitude"`
	Wavenumber float64 `yaml:"wavenumber"`
	Center     float64 `yaml:"center"`
	Width      float64 `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		N:       DefaultN,
		Scheme:  DefaultScheme,
		MaxTime: DefaultMaxTime,
		Initial: InitialConfig{
			Kind:       InitSine,
			Amplitude:  DefaultAmplitude,
			Wavenumber: DefaultWavenumber,
			Center:     math.Pi,
			Width:      DefaultWidth,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every construction parameter. All failures match
// heat.ErrConfiguration.
func (c *Config) Validate() error {
	if _, err := c.ParsedScheme(); err != nil {
		return err
	}
	if c.N < 3 {
		return fmt.Errorf("%w: n=%d", heat.ErrResolution, c.N)
	}
	if err := heat.ValidateMaxTime(c.MaxTime); err != nil {
		return err
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must not be negative", heat.ErrConfiguration)
	}
	return c.Initial.validate()
}

// ParsedScheme returns the scheme named by the config.
func (c *Config) ParsedScheme() (heat.Scheme, error) {
	return heat.ParseScheme(c.Scheme)
}

func (ic InitialConfig) validate() error {
	switch strings.ToLower(ic.Kind) {
	case InitZero, InitSine:
		return nil
	case InitGaussian, InitStep:
		if !(ic.Width > 0) {
			return fmt.Errorf("%w: %s width must be positive", heat.ErrConfiguration, ic.Kind)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown initial condition %q (available: %v)", heat.ErrConfiguration, ic.Kind, InitialKinds)
}

// Func returns the initial condition as a point-wise function of x.
func (ic InitialConfig) Func() (func(x float64) float64, error) {
	if err := ic.validate(); err != nil {
		return nil, err
	}
	a := ic.Amplitude
	switch strings.ToLower(ic.Kind) {
	case InitSine:
		k := ic.Wavenumber
		return func(x float64) float64 { return a * math.Sin(k*x) }, nil
	case InitGaussian:
		c, w := ic.Center, ic.Width
		return func(x float64) float64 {
			d := (x - c) / w
			return a * math.Exp(-0.5*d*d)
		}, nil
	case InitStep:
		c, w := ic.Center, ic.Width
		return func(x float64) float64 {
			if math.Abs(x-c) <= w {
				return a
			}
			return 0
		}, nil
	}
	return func(float64) float64 { return 0 }, nil
}
