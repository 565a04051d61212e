package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/quantity"
)

// YoyoCondition describes a yo-yo descending on its string: axle radius
// range, body radius, body mass, string length and gravity.
type YoyoCondition struct {
	Rmin     unit.Length
	Rmax     unit.Length
	Rout     unit.Length
	L        unit.Length
	Mass     unit.Mass
	G        quantity.Acceleration
	Duration unit.Time
}

// Yoyo models a yo-yo unwinding down its string. State layout:
// (theta, omega, y, v): rotation, angular velocity, string remaining,
// vertical velocity (non-positive while descending).
type Yoyo struct {
	cond YoyoCondition

	K    float64
	I    quantity.MomentOfInertia // body, solid-cylinder approximation
	Rmin float64
	Mass float64
	G    float64
	L    float64
}

func NewYoyo(c YoyoCondition) (*Yoyo, error) {
	if err := validateRadii(float64(c.Rmin), float64(c.Rmax)); err != nil {
		return nil, err
	}
	if c.Rout <= c.Rmax {
		return nil, fmt.Errorf("%w: body radius must exceed full axle radius, got Rout=%v", dynamo.ErrInvalidCondition, c.Rout)
	}
	if c.L <= 0 || c.Mass <= 0 || c.G <= 0 {
		return nil, fmt.Errorf("%w: length, mass and gravity must be positive", dynamo.ErrInvalidCondition)
	}
	if c.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", dynamo.ErrInvalidCondition, c.Duration)
	}

	rmin, rmax, rout, l := float64(c.Rmin), float64(c.Rmax), float64(c.Rout), float64(c.L)

	return &Yoyo{
		cond: c,
		K:    (rmax*rmax - rmin*rmin) / (2 * l),
		I:    quantity.MomentOfInertia(float64(c.Mass) * rout * rout / 2),
		Rmin: rmin,
		Mass: float64(c.Mass),
		G:    float64(c.G),
		L:    l,
	}, nil
}

func (y *Yoyo) Condition() YoyoCondition { return y.cond }

func (y *Yoyo) StateDim() int { return 4 }

func (y *Yoyo) Labels() []string { return []string{"theta", "omega", "y", "v"} }

// InitialState hangs the yo-yo at rest with the string fully wound.
func (y *Yoyo) InitialState() dynamo.State {
	return dynamo.State{0, 0, y.L, 0}
}

// RadiusAt gives the axle winding radius with s metres of string left.
func (y *Yoyo) RadiusAt(s float64) float64 {
	return math.Sqrt(2*y.K*s + y.Rmin*y.Rmin)
}

// Tension returns the string tension with s metres of string remaining.
func (y *Yoyo) Tension(s float64) float64 {
	r := y.RadiusAt(s)
	istar := float64(y.I) + y.Mass*r*r
	return y.Mass * y.G * float64(y.I) / istar
}

func (y *Yoyo) Derive(x dynamo.State, t float64) dynamo.State {
	s, v := x[2], x[3]
	if s < 0 {
		// String fully paid out: freeze the state rather than extrapolate
		// through invalid geometry. Not an error; the run keeps its grid.
		return dynamo.State{0, 0, 0, 0}
	}

	r := y.RadiusAt(s)
	istar := float64(y.I) + y.Mass*r*r
	a := -y.Mass * y.G * r * r / istar
	alpha := y.Mass * y.G * r / istar

	return dynamo.State{
		x[1],
		alpha,
		v,
		a,
	}
}
