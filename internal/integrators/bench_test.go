package integrators

import (
	"testing"

	"github.com/paperlab/rollsim/internal/dynamo"
)

func benchIntegrator(b *testing.B, integ dynamo.Integrator) {
	sys := oscillator{}
	x := dynamo.State{1.0, 0.0}
	dt := 0.01

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}
	_ = x
}

func BenchmarkEuler(b *testing.B) { benchIntegrator(b, NewEuler()) }
func BenchmarkRK4(b *testing.B)   { benchIntegrator(b, NewRK4()) }
func BenchmarkRK45(b *testing.B)  { benchIntegrator(b, NewRK45()) }
