// Package interp reconstructs continuous-time values from grid-aligned
// trajectory samples and inverts monotonic series ("at what time does y
// first reach 47?"). Fitting is delegated to gonum's interp package:
// Akima cubic splines for forward evaluation, Fritsch-Butland monotone
// cubics for the inverse mapping.
package interp

import (
	"errors"
	"fmt"

	gonuminterp "gonum.org/v1/gonum/interp"
)

var (
	// ErrTooFewSamples indicates a series too short to fit.
	ErrTooFewSamples = errors.New("interp: need at least two samples")

	// ErrNotMonotonic indicates an inverse query on a series with no
	// usable monotonic range.
	ErrNotMonotonic = errors.New("interp: series is not monotonic")

	// ErrOutOfRange indicates a query outside the fitted range.
	ErrOutOfRange = errors.New("interp: query outside sample range")
)

// Cubic fits a smooth cubic through (ts, vs) and returns a predictor for
// forward evaluation. ts must be strictly increasing.
func Cubic(ts, vs []float64) (gonuminterp.Predictor, error) {
	if len(ts) < 2 || len(ts) != len(vs) {
		return nil, ErrTooFewSamples
	}
	if !strictlyIncreasing(ts) {
		return nil, fmt.Errorf("%w: times must be strictly increasing", ErrNotMonotonic)
	}
	var s gonuminterp.AkimaSpline
	if err := s.Fit(ts, vs); err != nil {
		return nil, err
	}
	return &s, nil
}

// At evaluates the series at time t via a cubic fit.
func At(ts, vs []float64, t float64) (float64, error) {
	if len(ts) == 0 {
		return 0, ErrTooFewSamples
	}
	if t < ts[0] || t > ts[len(ts)-1] {
		return 0, fmt.Errorf("%w: t=%g not in [%g, %g]", ErrOutOfRange, t, ts[0], ts[len(ts)-1])
	}
	p, err := Cubic(ts, vs)
	if err != nil {
		return 0, err
	}
	return p.Predict(t), nil
}

// TimeOf returns the time at which the series first attains target, by
// fitting the inverse mapping value -> time with a monotone cubic. Only
// the leading monotonic stretch of the series is used; frozen tails
// (repeated values) are trimmed automatically.
func TimeOf(ts, vs []float64, target float64) (float64, error) {
	if len(ts) < 2 || len(ts) != len(vs) {
		return 0, ErrTooFewSamples
	}

	n := monotonicPrefix(vs)
	if n < 2 {
		return 0, ErrNotMonotonic
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	query := target
	if vs[1] > vs[0] {
		copy(xs, vs[:n])
		copy(ys, ts[:n])
	} else {
		// Decreasing series: negate values so xs increases.
		for i := 0; i < n; i++ {
			xs[i] = -vs[i]
			ys[i] = ts[i]
		}
		query = -target
	}

	if query < xs[0] || query > xs[n-1] {
		return 0, fmt.Errorf("%w: value %g never attained on the monotonic range", ErrOutOfRange, target)
	}

	var fb gonuminterp.FritschButland
	if err := fb.Fit(xs, ys); err != nil {
		return 0, err
	}
	return fb.Predict(query), nil
}

// monotonicPrefix returns the length of the longest strictly monotonic
// prefix of vs.
func monotonicPrefix(vs []float64) int {
	if len(vs) < 2 {
		return len(vs)
	}
	increasing := vs[1] > vs[0]
	for i := 1; i < len(vs); i++ {
		if increasing && vs[i] <= vs[i-1] {
			return i
		}
		if !increasing && vs[i] >= vs[i-1] {
			return i
		}
	}
	return len(vs)
}

func strictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}
