package integrators

import (
	"math"
	"testing"

	"github.com/paperlab/rollsim/internal/dynamo"
)

// oscillator is simple harmonic motion, integrated as (x, v) with a = -x.
type oscillator struct{}

func (oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}
func (oscillator) StateDim() int    { return 2 }
func (oscillator) Labels() []string { return []string{"x", "v"} }

func TestRK4Accuracy(t *testing.T) {
	sys := oscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-6 {
		t.Errorf("position error too large: got %.8f, expected %.8f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-6 {
		t.Errorf("velocity error too large: got %.8f, expected %.8f", x[1], expectedV)
	}
}

func TestRK4BeatsEuler(t *testing.T) {
	sys := oscillator{}
	rk4 := NewRK4()
	euler := NewEuler()

	xr := dynamo.State{1.0, 0.0}
	xe := dynamo.State{1.0, 0.0}
	dt := 0.05
	steps := 200

	for i := 0; i < steps; i++ {
		tNow := float64(i) * dt
		xr = rk4.Step(sys, xr, tNow, dt)
		xe = euler.Step(sys, xe, tNow, dt)
	}

	exact := math.Cos(float64(steps) * dt)
	if math.Abs(xr[0]-exact) >= math.Abs(xe[0]-exact) {
		t.Errorf("rk4 error %.2e not smaller than euler error %.2e",
			math.Abs(xr[0]-exact), math.Abs(xe[0]-exact))
	}
}

func TestRK4ReusesScratch(t *testing.T) {
	sys := oscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	x = integ.Step(sys, x, 0, 0.01)
	first := &integ.k1[0]
	x = integ.Step(sys, x, 0.01, 0.01)

	if first != &integ.k1[0] {
		t.Error("scratch buffers should be reused between equal-sized steps")
	}
}
