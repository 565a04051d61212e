// Package scenario assembles runnable systems from configuration and
// orchestrates their integration. Assembly is where invalid conditions
// fail fast; a successfully assembled Run is immutable and integrates at
// most once, yielding a separate trajectory.
package scenario

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/unit"

	"github.com/paperlab/rollsim/internal/config"
	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/metrics"
	"github.com/paperlab/rollsim/internal/physics"
	"github.com/paperlab/rollsim/internal/quantity"
)

// Model is a scenario system that knows its own starting point.
type Model interface {
	dynamo.System
	InitialState() dynamo.State
}

// Run bundles an assembled system with its initial state, time grid and
// integration settings.
type Run struct {
	Name       string
	System     Model
	X0         dynamo.State
	Grid       []float64
	SimCfg     dynamo.Config
	Integrator dynamo.Integrator
	Metrics    []metrics.Metric
}

// Assemble builds the configured scenario: condition construction,
// parameter derivation, initial state and the uniform time grid.
func Assemble(cfg *config.Config) (*Run, error) {
	model, err := buildModel(cfg)
	if err != nil {
		return nil, err
	}

	duration, err := cfg.Duration()
	if err != nil {
		return nil, err
	}

	samples := cfg.Samples
	if samples <= 0 {
		samples = config.DefaultSamples
	}

	integ, err := NewIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	simCfg := dynamo.DefaultConfig()
	simCfg.Adaptive = cfg.Adaptive
	if cfg.Dt > 0 {
		simCfg.Dt = cfg.Dt
	}

	return &Run{
		Name:       cfg.Scenario,
		System:     model,
		X0:         model.InitialState(),
		Grid:       dynamo.UniformGrid(duration, samples),
		SimCfg:     simCfg,
		Integrator: integ,
		Metrics:    defaultMetrics(cfg.Scenario, model),
	}, nil
}

// Execute integrates the run and returns the trajectory along with the
// reduced metric values.
func (r *Run) Execute(ctx context.Context) (*dynamo.Trajectory, map[string]float64, error) {
	sim := dynamo.New(r.System, r.Integrator)
	for _, m := range r.Metrics {
		m.Reset()
		sim.AddObserver(m)
	}

	traj, err := sim.Run(ctx, r.X0, r.Grid, r.SimCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: %w", r.Name, err)
	}

	vals := make(map[string]float64, len(r.Metrics))
	for _, m := range r.Metrics {
		vals[m.Name()] = m.Value()
	}
	return traj, vals, nil
}

func buildModel(cfg *config.Config) (Model, error) {
	switch cfg.Scenario {
	case "roll":
		p := cfg.Roll
		return physics.NewRoll(physics.RollCondition{
			Rmin:     unit.Length(p.Rmin),
			Rmax:     unit.Length(p.Rmax),
			L:        unit.Length(p.Length),
			Duration: unit.Time(p.Duration),
		})
	case "unroll":
		p := cfg.Unroll
		return physics.NewUnroll(physics.UnrollCondition{
			Rmin:     unit.Length(p.Rmin),
			Rmax:     unit.Length(p.Rmax),
			L:        unit.Length(p.Length),
			Mcore:    unit.Mass(p.Mcore),
			Mroll:    unit.Mass(p.Mroll),
			Tension:  quantity.Force(p.Tension),
			Duration: unit.Time(p.Duration),
		})
	case "yoyo":
		p := cfg.Yoyo
		return physics.NewYoyo(physics.YoyoCondition{
			Rmin:     unit.Length(p.Rmin),
			Rmax:     unit.Length(p.Rmax),
			Rout:     unit.Length(p.Rout),
			L:        unit.Length(p.Length),
			Mass:     unit.Mass(p.Mass),
			G:        quantity.Acceleration(p.Gravity),
			Duration: unit.Time(p.Duration),
		})
	}
	return nil, fmt.Errorf("unknown scenario: %s", cfg.Scenario)
}

func defaultMetrics(name string, model Model) []metrics.Metric {
	switch m := model.(type) {
	case *physics.Roll:
		return []metrics.Metric{
			metrics.NewFinal("total_rotation", 0),
			metrics.NewFinal("final_r", 2),
			metrics.NewFirstCrossing("takeup_time", 1, m.L),
		}
	case *physics.Unroll:
		return []metrics.Metric{
			metrics.NewFinal("total_rotation", 0),
			metrics.NewPeak("peak_omega", 1),
			metrics.NewFinal("final_y", 2),
		}
	case *physics.Yoyo:
		return []metrics.Metric{
			metrics.NewPeak("peak_speed", 3),
			metrics.NewFinal("final_y", 2),
			metrics.NewFirstCrossing("payout_time", 2, 0),
		}
	}
	return nil
}
