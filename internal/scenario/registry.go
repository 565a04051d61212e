package scenario

import (
	"context"
	"fmt"
	"sync"

	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/integrators"
)

// Names lists the scenarios in presentation order.
func Names() []string {
	return []string{"roll", "unroll", "yoyo"}
}

func NewIntegrator(name string) (dynamo.Integrator, error) {
	switch name {
	case "", "rk4":
		return integrators.NewRK4(), nil
	case "euler":
		return integrators.NewEuler(), nil
	case "rk45":
		return integrators.NewRK45(), nil
	}
	return nil, fmt.Errorf("unknown integrator: %s", name)
}

// Outcome pairs one run with its results.
type Outcome struct {
	Run        *Run
	Trajectory *dynamo.Trajectory
	Metrics    map[string]float64
	Err        error
}

// All executes independent runs concurrently. Scenarios share no state,
// so no synchronization beyond the join is needed.
func All(ctx context.Context, runs []*Run) []Outcome {
	outcomes := make([]Outcome, len(runs))

	var wg sync.WaitGroup
	for i, r := range runs {
		wg.Add(1)
		go func(idx int, run *Run) {
			defer wg.Done()
			traj, vals, err := run.Execute(ctx)
			outcomes[idx] = Outcome{Run: run, Trajectory: traj, Metrics: vals, Err: err}
		}(i, r)
	}
	wg.Wait()

	return outcomes
}
