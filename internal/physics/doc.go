// Package physics provides the three rolled-paper dynamical models.
//
// Each model is built from an immutable condition (the physically
// meaningful input parameters, carried as unit-tagged quantities) by a
// constructor that validates the geometric invariants and derives the
// scenario constants. The resulting value implements [dynamo.System]:
//
//   - [Roll]: a paper tube rolled up at constant angular velocity;
//     state (theta, y, r)
//   - [Unroll]: a roll unrolling under constant string tension;
//     state (theta, omega, y)
//   - [Yoyo]: a descending yo-yo; state (theta, omega, y, v)
//
// All three share the radius-growth constant k relating paper length to
// roll radius. Unroll and Yoyo derive the instantaneous radius from the
// remaining length via r = sqrt(2ky + Rmin²); once the paper or string is
// fully paid out that relation leaves its domain and the derivative
// freezes to zero rather than extrapolating through invalid geometry.
package physics
