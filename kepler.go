package orekit

import "math"

// Latitude argument conversions generalized over the equinoctial
// eccentricity vector (ex, ey). The classical single-eccentricity anomaly
// conversions are the (ex=e, ey=0) restriction of these.
//
// All closed forms below use the stabilizing factor 1/(1+√(1−ex²−ey²)) so
// that nothing divides by 1+cos(E) near e→1.

// eccentricToTrueLatitude converts an eccentric latitude argument λE to the
// true latitude argument λv.
func eccentricToTrueLatitude(ex, ey, λE float64) float64 {
	ε := math.Sqrt(1 - ex*ex - ey*ey)
	sinλE, cosλE := math.Sincos(λE)
	num := ex*sinλE - ey*cosλE
	den := ε + 1 - ex*cosλE - ey*sinλE
	return λE + 2*math.Atan(num/den)
}

// trueToEccentricLatitude converts a true latitude argument λv to the
// eccentric latitude argument λE.
func trueToEccentricLatitude(ex, ey, λv float64) float64 {
	ε := math.Sqrt(1 - ex*ex - ey*ey)
	sinλv, cosλv := math.Sincos(λv)
	num := ey*cosλv - ex*sinλv
	den := ε + 1 + ex*cosλv + ey*sinλv
	return λv + 2*math.Atan(num/den)
}

// eccentricToMeanLatitude is the closed-form evaluation of the generalized
// Kepler equation λM = λE − ex·sin(λE) + ey·cos(λE).
func eccentricToMeanLatitude(ex, ey, λE float64) float64 {
	sinλE, cosλE := math.Sincos(λE)
	return λE - ex*sinλE + ey*cosλE
}

// meanToEccentricLatitude inverts the generalized Kepler equation with the
// configured tolerance and iteration budget (defaults 1e-12 rad and 50).
func meanToEccentricLatitude(ex, ey, λM float64) (float64, error) {
	conf := orekitConfig()
	λE, _, err := solveKepler(ex, ey, λM, conf.keplerTolerance, conf.keplerMaxIter)
	return λE, err
}

// solveKepler solves λM = λE − ex·sin(λE) + ey·cos(λE) for λE by Newton
// iteration started at λM. The equation is transcendental and convergence
// slows as ex²+ey²→1, so the loop is bounded: once maxIter iterations have
// run without the correction falling below tolerance, a NonConvergenceError
// carrying the last estimate is returned instead of looping forever.
func solveKepler(ex, ey, λM, tolerance float64, maxIter int) (float64, int, error) {
	λE := λM
	for iter := 1; iter <= maxIter; iter++ {
		sinλE, cosλE := math.Sincos(λE)
		f := λE - ex*sinλE + ey*cosλE - λM
		fPrime := 1 - ex*cosλE - ey*sinλE
		shift := f / fPrime
		λE -= shift
		if math.Abs(shift) <= tolerance {
			return λE, iter, nil
		}
	}
	return λE, maxIter, NonConvergenceError{Ex: ex, Ey: ey, LM: λM, LastEstimate: λE, Iterations: maxIter}
}
