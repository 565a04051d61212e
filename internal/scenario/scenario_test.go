package scenario

import (
	"errors"
	"testing"

	"github.com/paperlab/rollsim/internal/config"
	"github.com/paperlab/rollsim/internal/dynamo"
)

func TestAssembleDefaults(t *testing.T) {
	run, err := Assemble(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if run.Name != "roll" {
		t.Errorf("Name = %q, want roll", run.Name)
	}
	if len(run.Grid) != config.DefaultSamples {
		t.Errorf("grid has %d points, want %d", len(run.Grid), config.DefaultSamples)
	}
	if run.Grid[len(run.Grid)-1] != 130 {
		t.Errorf("grid ends at %v, want 130", run.Grid[len(run.Grid)-1])
	}
	if got, want := len(run.X0), run.System.StateDim(); got != want {
		t.Errorf("X0 has %d components, StateDim = %d", got, want)
	}
	if len(run.Metrics) == 0 {
		t.Error("expected default metrics")
	}
}

func TestAssembleFailsFastOnBadCondition(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"radii swapped", func(c *config.Config) { c.Roll.Rmin, c.Roll.Rmax = c.Roll.Rmax, c.Roll.Rmin }},
		{"zero core radius", func(c *config.Config) { c.Roll.Rmin = 0 }},
		{"negative length", func(c *config.Config) { c.Roll.Length = -1 }},
		{"zero duration", func(c *config.Config) { c.Roll.Duration = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			_, err := Assemble(cfg)
			if !errors.Is(err, dynamo.ErrInvalidCondition) {
				t.Fatalf("err = %v, want ErrInvalidCondition", err)
			}
		})
	}
}

func TestAssembleUnknownScenario(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scenario = "pendulum"
	if _, err := Assemble(cfg); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestAssembleUnknownIntegrator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Integrator = "leapfrog"
	if _, err := Assemble(cfg); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestNewIntegrator(t *testing.T) {
	for _, name := range []string{"", "rk4", "euler", "rk45"} {
		if _, err := NewIntegrator(name); err != nil {
			t.Errorf("NewIntegrator(%q): %v", name, err)
		}
	}
	if _, err := NewIntegrator("verlet"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}

func TestDefaultMetricNames(t *testing.T) {
	want := map[string][]string{
		"roll":   {"total_rotation", "final_r", "takeup_time"},
		"unroll": {"total_rotation", "peak_omega", "final_y"},
		"yoyo":   {"peak_speed", "final_y", "payout_time"},
	}
	for _, scenario := range Names() {
		cfg := config.GetPreset(scenario, "demo")
		run, err := Assemble(cfg)
		if err != nil {
			t.Fatalf("Assemble(%s): %v", scenario, err)
		}
		names := make([]string, len(run.Metrics))
		for i, m := range run.Metrics {
			names[i] = m.Name()
		}
		for i, n := range want[scenario] {
			if names[i] != n {
				t.Errorf("%s metric[%d] = %q, want %q", scenario, i, names[i], n)
			}
		}
	}
}
