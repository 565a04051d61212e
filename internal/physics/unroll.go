package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/paperlab/rollsim/internal/dynamo"
	"github.com/paperlab/rollsim/internal/quantity"
)

// UnrollCondition describes a paper roll unrolling under a constant pull
// on the free end of the paper.
type UnrollCondition struct {
	Rmin     unit.Length
	Rmax     unit.Length
	L        unit.Length
	Mcore    unit.Mass
	Mroll    unit.Mass
	Tension  quantity.Force
	Duration unit.Time
}

// Unroll models a roll paying out paper under constant tension. State
// layout: (theta, omega, y): angle unrolled, angular velocity, paper
// length remaining on the roll.
type Unroll struct {
	cond UnrollCondition

	K       float64                  // m² of paper cross-section per metre unrolled
	RhoH    quantity.ArealDensity    // paper mass per unit area
	ICore   quantity.MomentOfInertia // bare core contribution
	Rmin    float64
	Rmax    float64
	L       float64
	Mcore   float64
	Tension float64
}

// NewUnroll validates the condition and derives k from area balance
// (conservation of paper volume) and the areal density from the paper
// mass spread over the roll's annulus.
func NewUnroll(c UnrollCondition) (*Unroll, error) {
	if err := validateRadii(float64(c.Rmin), float64(c.Rmax)); err != nil {
		return nil, err
	}
	if c.L <= 0 {
		return nil, fmt.Errorf("%w: paper length must be positive, got %v", dynamo.ErrInvalidCondition, c.L)
	}
	if c.Mcore <= 0 || c.Mroll <= 0 {
		return nil, fmt.Errorf("%w: masses must be positive", dynamo.ErrInvalidCondition)
	}
	if c.Tension <= 0 {
		return nil, fmt.Errorf("%w: tension must be positive, got %v", dynamo.ErrInvalidCondition, c.Tension)
	}
	if c.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", dynamo.ErrInvalidCondition, c.Duration)
	}

	rmin, rmax, l := float64(c.Rmin), float64(c.Rmax), float64(c.L)
	annulus := math.Pi * (rmax*rmax - rmin*rmin)

	return &Unroll{
		cond:    c,
		K:       (rmax*rmax - rmin*rmin) / (2 * l),
		RhoH:    quantity.ArealDensity(float64(c.Mroll) / annulus),
		ICore:   quantity.MomentOfInertia(float64(c.Mcore) * rmin * rmin),
		Rmin:    rmin,
		Rmax:    rmax,
		L:       l,
		Mcore:   float64(c.Mcore),
		Tension: float64(c.Tension),
	}, nil
}

func (u *Unroll) Condition() UnrollCondition { return u.cond }

func (u *Unroll) StateDim() int { return 3 }

func (u *Unroll) Labels() []string { return []string{"theta", "omega", "y"} }

// InitialState starts at rest with the full paper length on the roll.
func (u *Unroll) InitialState() dynamo.State {
	return dynamo.State{0, 0, u.L}
}

// RadiusAt inverts the area-conservation relation between remaining
// length y and roll radius.
func (u *Unroll) RadiusAt(y float64) float64 {
	return math.Sqrt(2*u.K*y + u.Rmin*u.Rmin)
}

// MomentOfInertia at roll radius r: a thin-walled core plus the paper
// annulus integrated as a solid of areal density RhoH.
func (u *Unroll) MomentOfInertia(r float64) float64 {
	rmin2 := u.Rmin * u.Rmin
	return u.Mcore*rmin2 + (math.Pi*float64(u.RhoH)/2)*(r*r*r*r-rmin2*rmin2)
}

func (u *Unroll) Derive(x dynamo.State, t float64) dynamo.State {
	omega, y := x[1], x[2]
	if y <= 0 {
		// Fully paid out: the radius relation no longer holds, freeze.
		return dynamo.State{0, 0, 0}
	}

	r := u.RadiusAt(y)
	tau := r * u.Tension
	alpha := tau / u.MomentOfInertia(r)

	return dynamo.State{
		omega,
		alpha,
		-r * omega,
	}
}
