package dynamo

import (
	"context"
	"fmt"
	"math"
)

// Simulator advances a System across a fixed time grid, recording one
// sample per grid point. Inner steps never exceed cfg.Dt (or the adaptive
// controller's suggestion) and always land exactly on grid points.
type Simulator struct {
	sys        System
	integrator Integrator
	observers  []Observer
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates from x0 over grid and returns the grid-aligned trajectory.
// The first sample equals x0. A non-finite state aborts the run with a
// SimError wrapping ErrInvalidState.
func (s *Simulator) Run(ctx context.Context, x0 State, grid []float64, cfg Config) (*Trajectory, error) {
	if err := validate(x0, grid, cfg); err != nil {
		return nil, err
	}

	traj := &Trajectory{
		Labels: s.sys.Labels(),
		Times:  make([]float64, 0, len(grid)),
		States: make([]State, 0, len(grid)),
	}

	x := x0.Clone()
	s.record(traj, x, grid[0])

	adaptDt := cfg.Dt
	for i := 1; i < len(grid); i++ {
		select {
		case <-ctx.Done():
			return traj, ctx.Err()
		default:
		}

		var err error
		if cfg.Adaptive {
			x, adaptDt, err = s.advanceAdaptive(x, grid[i-1], grid[i], adaptDt, cfg)
		} else {
			x, err = s.advance(x, grid[i-1], grid[i], cfg.Dt)
		}
		if err != nil {
			return nil, &SimError{Step: i, Time: grid[i], Wrapped: err}
		}

		if cfg.ValidateState && !x.IsValid() {
			return nil, &SimError{Step: i, Time: grid[i], Wrapped: ErrInvalidState}
		}
		s.record(traj, x, grid[i])
	}

	return traj, nil
}

func (s *Simulator) record(traj *Trajectory, x State, t float64) {
	traj.Times = append(traj.Times, t)
	traj.States = append(traj.States, x.Clone())
	for _, o := range s.observers {
		o.OnSample(x, t)
	}
}

// advance takes fixed substeps from t0 to t1, sized so none exceeds maxDt.
func (s *Simulator) advance(x State, t0, t1, maxDt float64) (State, error) {
	span := t1 - t0
	if span <= 0 {
		return x, nil
	}
	n := int(math.Ceil(span / maxDt))
	if n < 1 {
		n = 1
	}
	dt := span / float64(n)
	t := t0
	for i := 0; i < n; i++ {
		x = s.integrator.Step(s.sys, x, t, dt)
		t += dt
	}
	return x, nil
}

// advanceAdaptive steps from t0 to t1 with the integrator's own step
// control, clamping the final step onto t1.
func (s *Simulator) advanceAdaptive(x State, t0, t1, dt float64, cfg Config) (State, float64, error) {
	adaptive, ok := s.integrator.(AdaptiveIntegrator)
	if !ok {
		xNew, err := s.advance(x, t0, t1, cfg.Dt)
		return xNew, dt, err
	}

	t := t0
	for t < t1-1e-12 {
		step := math.Min(dt, t1-t)
		xNew, dtNext, err := adaptive.StepAdaptive(s.sys, x, t, step, cfg.Tolerance)
		if err != nil {
			return nil, dt, err
		}
		x = xNew
		t += step

		dt = dtNext
		if dt > cfg.MaxDt {
			dt = cfg.MaxDt
		}
		if dt < cfg.MinDt {
			return nil, dt, ErrStepTooSmall
		}
	}
	return x, dt, nil
}

func validate(x0 State, grid []float64, cfg Config) error {
	if len(grid) < 2 {
		return ErrEmptyGrid
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] < grid[i-1] {
			return fmt.Errorf("%w: grid not non-decreasing at index %d", ErrEmptyGrid, i)
		}
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	if !x0.IsValid() {
		return ErrInvalidState
	}
	return nil
}
