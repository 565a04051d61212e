package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples    = 101
	DefaultIntegrator = "rk4"
)

// Config carries everything needed to assemble and run one scenario.
// All physical values are SI magnitudes (metres, kilograms, seconds,
// newtons); unit tagging happens when the condition is built.
type Config struct {
	Scenario   string       `yaml:"scenario"`
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Samples    int          `yaml:"samples"`
	Adaptive   bool         `yaml:"adaptive"`
	Roll       RollParams   `yaml:"roll"`
	Unroll     UnrollParams `yaml:"unroll"`
	Yoyo       YoyoParams   `yaml:"yoyo"`
}

type RollParams struct {
	Rmin     float64 `yaml:"rmin"`
	Rmax     float64 `yaml:"rmax"`
	Length   float64 `yaml:"length"`
	Duration float64 `yaml:"duration"`
}

type UnrollParams struct {
	Rmin     float64 `yaml:"rmin"`
	Rmax     float64 `yaml:"rmax"`
	Length   float64 `yaml:"length"`
	Mcore    float64 `yaml:"mcore"`
	Mroll    float64 `yaml:"mroll"`
	Tension  float64 `yaml:"tension"`
	Duration float64 `yaml:"duration"`
}

type YoyoParams struct {
	Rmin     float64 `yaml:"rmin"`
	Rmax     float64 `yaml:"rmax"`
	Rout     float64 `yaml:"rout"`
	Length   float64 `yaml:"length"`
	Mass     float64 `yaml:"mass"`
	Gravity  float64 `yaml:"gravity"`
	Duration float64 `yaml:"duration"`
}

// DefaultConfig carries the worked-example conditions: a 47 m consumer
// paper roll and a 35 mm yo-yo.
func DefaultConfig() *Config {
	return &Config{
		Scenario:   "roll",
		Integrator: DefaultIntegrator,
		Dt:         0.01,
		Samples:    DefaultSamples,
		Roll: RollParams{
			Rmin: 0.02, Rmax: 0.055, Length: 47, Duration: 130,
		},
		Unroll: UnrollParams{
			Rmin: 0.02, Rmax: 0.055, Length: 47,
			Mcore: 0.015, Mroll: 0.215, Tension: 2e-4, Duration: 180,
		},
		Yoyo: YoyoParams{
			Rmin: 8e-3, Rmax: 16e-3, Rout: 35e-3,
			Length: 1, Mass: 0.05, Gravity: 9.8, Duration: 1,
		},
	}
}

// Duration returns the configured scenario's time span.
func (c *Config) Duration() (float64, error) {
	switch c.Scenario {
	case "roll":
		return c.Roll.Duration, nil
	case "unroll":
		return c.Unroll.Duration, nil
	case "yoyo":
		return c.Yoyo.Duration, nil
	}
	return 0, fmt.Errorf("unknown scenario: %s", c.Scenario)
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
