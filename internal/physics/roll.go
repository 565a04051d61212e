package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/quantity"
)

// DriveOmega is the fixed angular velocity driving the roll scenario, a
// simplifying assumption of the model.
const DriveOmega quantity.AngularVelocity = 10

// RollCondition describes a paper tube being rolled up: the tube radius,
// the full roll radius, the paper length and how long to simulate.
type RollCondition struct {
	Rmin     unit.Length
	Rmax     unit.Length
	L        unit.Length
	Duration unit.Time
}

// Roll models rolling paper onto a tube at constant angular velocity.
// State layout: (theta, y, r): angle rolled, paper length taken up,
// current roll radius.
type Roll struct {
	cond RollCondition

	// Derived constants, SI magnitudes.
	K        float64 // radius growth per radian
	Rotation float64 // total rotation to take up all paper, rad
	Rmin     float64
	Rmax     float64
	L        float64
	Omega    float64
}

// NewRoll validates the condition and derives k from the boundary
// parameters: the paper length fixes the total rotation via the average
// circumference, and the radius range divided by that rotation gives the
// growth per radian.
func NewRoll(c RollCondition) (*Roll, error) {
	if err := validateRadii(float64(c.Rmin), float64(c.Rmax)); err != nil {
		return nil, err
	}
	if c.L <= 0 {
		return nil, fmt.Errorf("%w: paper length must be positive, got %v", dynamo.ErrInvalidCondition, c.L)
	}
	if c.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", dynamo.ErrInvalidCondition, c.Duration)
	}

	rmin, rmax, l := float64(c.Rmin), float64(c.Rmax), float64(c.L)
	ravg := (rmin + rmax) / 2
	revs := l / (2 * math.Pi * ravg)
	rotation := 2 * math.Pi * revs

	return &Roll{
		cond:     c,
		K:        (rmax - rmin) / rotation,
		Rotation: rotation,
		Rmin:     rmin,
		Rmax:     rmax,
		L:        l,
		Omega:    float64(DriveOmega),
	}, nil
}

func (r *Roll) Condition() RollCondition { return r.cond }

func (r *Roll) StateDim() int { return 3 }

func (r *Roll) Labels() []string { return []string{"theta", "y", "r"} }

// InitialState starts with no paper rolled and the radius at the bare tube.
func (r *Roll) InitialState() dynamo.State {
	return dynamo.State{0, 0, r.Rmin}
}

func (r *Roll) Derive(x dynamo.State, t float64) dynamo.State {
	radius := x[2]
	return dynamo.State{
		r.Omega,
		radius * r.Omega,
		r.K * r.Omega,
	}
}

// RadiusAt returns the roll radius after rolling through theta radians.
func (r *Roll) RadiusAt(theta float64) float64 {
	return r.Rmin + r.K*theta
}

func validateRadii(rmin, rmax float64) error {
	if rmin <= 0 {
		return fmt.Errorf("%w: Rmin must be positive, got %g", dynamo.ErrInvalidCondition, rmin)
	}
	if rmax <= rmin {
		// Equal radii leave the total rotation zero and k undefined.
		return fmt.Errorf("%w: need Rmax > Rmin, got Rmin=%g Rmax=%g", dynamo.ErrInvalidCondition, rmin, rmax)
	}
	return nil
}
