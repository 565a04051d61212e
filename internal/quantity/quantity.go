// Package quantity extends gonum's unit package with the derived SI
// quantities the rolled-paper scenarios need. Base quantities (lengths,
// masses, durations) use unit.Length, unit.Mass and unit.Time directly;
// the newtypes here cover combinations unit does not name, following the
// package's own extension pattern (unit.New with a Dimensions map).
package quantity

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

// Force in newtons (kg m s^-2).
type Force float64

func (f Force) Unit() *unit.Unit {
	return unit.New(float64(f), unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 1,
		unit.TimeDim:   -2,
	})
}

// Acceleration in m s^-2.
type Acceleration float64

func (a Acceleration) Unit() *unit.Unit {
	return unit.New(float64(a), unit.Dimensions{
		unit.LengthDim: 1,
		unit.TimeDim:   -2,
	})
}

// AngularVelocity in rad s^-1. Radians are dimensionless in SI.
type AngularVelocity float64

func (w AngularVelocity) Unit() *unit.Unit {
	return unit.New(float64(w), unit.Dimensions{
		unit.TimeDim: -1,
	})
}

// ArealDensity in kg m^-2 (paper mass per unit area).
type ArealDensity float64

func (d ArealDensity) Unit() *unit.Unit {
	return unit.New(float64(d), unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -2,
	})
}

// MomentOfInertia in kg m^2.
type MomentOfInertia float64

func (m MomentOfInertia) Unit() *unit.Unit {
	return unit.New(float64(m), unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: 2,
	})
}

// From converts a general dimensional value into dst, failing when the
// dimensions disagree. dst must be one of the quantity newtypes.
func From(dst unit.Uniter, u unit.Uniter) (float64, error) {
	if !unit.DimensionsMatch(dst, u) {
		return 0, fmt.Errorf("quantity: dimension mismatch: %v vs %v", dst.Unit(), u.Unit())
	}
	return u.Unit().Value(), nil
}

// StandardGravity is the conventional value of g at the Earth's surface.
const StandardGravity Acceleration = 9.80665
