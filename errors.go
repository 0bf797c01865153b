package orekit

import (
	"fmt"
	"time"
)

// InvalidOrbitGeometryError is returned when orbital parameters describe a
// trajectory this package does not handle: non-positive semi-major axis or
// an eccentricity at or above 1 (parabolic and hyperbolic orbits are
// rejected, never silently clamped).
type InvalidOrbitGeometryError struct {
	A float64 // Semi-major axis (m) as supplied or derived
	E float64 // Eccentricity as supplied or derived
}

func (e InvalidOrbitGeometryError) Error() string {
	if e.A <= 0 {
		return fmt.Sprintf("orekit: invalid orbit geometry: semi-major axis %.6e m is not positive", e.A)
	}
	return fmt.Sprintf("orekit: invalid orbit geometry: eccentricity %.6f is not below 1 (orbit is not elliptical)", e.E)
}

// NonConvergenceError is returned when the Kepler equation solver exhausts
// its iteration budget. The last estimate and the inputs are kept for
// diagnosability.
type NonConvergenceError struct {
	Ex, Ey       float64 // Eccentricity vector used by the solver
	LM           float64 // Mean latitude argument being inverted (rad)
	LastEstimate float64 // Eccentric latitude argument at the final iteration (rad)
	Iterations   int     // Iterations performed before giving up
}

func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("orekit: Kepler equation did not converge after %d iterations (ex=%.9f ey=%.9f lM=%.9f, last estimate %.9f)",
		e.Iterations, e.Ex, e.Ey, e.LM, e.LastEstimate)
}

// AttitudeFailureError wraps a failure of the externally supplied attitude
// law during propagation, tagged with the date at which the law was queried.
type AttitudeFailureError struct {
	Date  time.Time
	Cause error
}

func (e AttitudeFailureError) Error() string {
	return fmt.Sprintf("orekit: attitude law failed at %s: %s", e.Date.Format(time.RFC3339), e.Cause)
}

func (e AttitudeFailureError) Unwrap() error {
	return e.Cause
}
