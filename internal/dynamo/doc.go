// Package dynamo provides core simulation primitives for the rolled-paper
// dynamics scenarios.
//
// The package defines the fundamental interfaces and types for numerical
// integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepper interface
//   - [Simulator]: advances a system across a fixed time grid
//   - [Trajectory]: grid-aligned time series, one per completed run
//
// # Example
//
//	sys, _ := physics.NewRoll(cond)
//	sim := dynamo.New(sys, integrators.NewRK4())
//	traj, _ := sim.Run(ctx, sys.InitialState(), dynamo.UniformGrid(130, 101), cfg)
//
// A system is assembled once and never mutated; integration produces a
// separate Trajectory value rather than writing results back into the
// system. Simulator instances are not safe for concurrent use; run
// independent scenarios on independent Simulators.
package dynamo
