package dynamo

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is the right-hand side of an ODE dX/dt = f(X, t). The rolled-paper
// scenarios are autonomous; t is passed through for integrator compatibility.
type System interface {
	Derive(x State, t float64) State
	StateDim() int
	Labels() []string
}

type Integrator interface {
	Step(sys System, x State, t float64, dt float64) State
}

type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

// Observer is notified at every recorded grid sample.
type Observer interface {
	OnSample(x State, t float64)
}

// GridSamples is the default number of trajectory samples per run.
const GridSamples = 101

// UniformGrid returns n evenly spaced time points covering [0, duration],
// both endpoints included.
func UniformGrid(duration float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	grid := make([]float64, n)
	step := duration / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[n-1] = duration
	return grid
}

type Config struct {
	// Dt is the inner integration step. Grid intervals are subdivided so no
	// step exceeds Dt; recorded samples always land on grid points.
	Dt            float64
	Tolerance     float64
	MaxDt         float64
	MinDt         float64
	Adaptive      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         1e-8,
		Adaptive:      false,
		ValidateState: true,
	}
}

// Trajectory is the integrated time series, aligned to the grid it was
// requested on. It is returned by the simulator rather than attached to the
// system, so systems stay immutable for their whole lifecycle.
type Trajectory struct {
	Labels []string
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) Final() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}

// Lookup is Series with a diagnosable failure: unknown labels report
// ErrUnknownSeries along with the labels the trajectory does carry.
func (tr *Trajectory) Lookup(label string) ([]float64, error) {
	if vs := tr.Series(label); vs != nil {
		return vs, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownSeries, label, tr.Labels)
}

// Series extracts one state component by label, nil if the label is unknown.
func (tr *Trajectory) Series(label string) []float64 {
	for i, l := range tr.Labels {
		if l == label {
			return tr.Component(i)
		}
	}
	return nil
}

func (tr *Trajectory) Component(idx int) []float64 {
	out := make([]float64, len(tr.States))
	for i, s := range tr.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}
