package orekit

import (
	"fmt"
	"math"
)

// EquinoctialParameters is the canonical orbital state representation: it
// stays well-posed for circular and equatorial orbits and only degenerates
// for purely retrograde ones (i=π, where the inclination vector blows up).
// Every cross-variant conversion in this package routes through it.
type EquinoctialParameters struct {
	a      float64 // semi-major axis (m)
	ex, ey float64 // eccentricity vector e·(cos,sin)(ω+Ω)
	hx, hy float64 // inclination vector tan(i/2)·(cos,sin)(Ω)
	λv     float64 // true latitude argument ν+ω+Ω (rad)
	frame  *Frame
	cache  *pvCache
}

// NewEquinoctialParameters builds equinoctial parameters from the five
// equinoctial elements and a latitude argument of the provided flavor.
// It returns an InvalidOrbitGeometryError when a is not positive or the
// eccentricity vector is not inside the unit disk, and a NonConvergenceError
// when a mean latitude argument cannot be inverted.
func NewEquinoctialParameters(a, ex, ey, hx, hy, l float64, typ PositionAngle, frame *Frame) (*EquinoctialParameters, error) {
	e := math.Sqrt(ex*ex + ey*ey)
	if a <= 0 || e >= 1 {
		return nil, InvalidOrbitGeometryError{A: a, E: e}
	}
	var λv float64
	switch typ {
	case MeanPositionAngle:
		λE, err := meanToEccentricLatitude(ex, ey, l)
		if err != nil {
			return nil, err
		}
		λv = eccentricToTrueLatitude(ex, ey, λE)
	case EccentricPositionAngle:
		λv = eccentricToTrueLatitude(ex, ey, l)
	case TruePositionAngle:
		λv = l
	default:
		panic(fmt.Errorf("unknown position angle %d", typ))
	}
	return &EquinoctialParameters{a, ex, ey, hx, hy, λv, frame, new(pvCache)}, nil
}

// NewEquinoctialFromPV computes the equinoctial elements from a cartesian
// position-velocity pair. The inclination vector comes from the direction of
// the angular momentum, the eccentricity vector from the vis-viva
// construction, and the true latitude argument from the position resolved in
// the orbital-plane basis, so neither ω nor Ω is ever extracted on its own.
func NewEquinoctialFromPV(pv PVCoordinates, frame *Frame, μ float64) (*EquinoctialParameters, error) {
	r := pv.RNorm()
	v2 := dot(pv.Velocity, pv.Velocity)
	rV2OnMu := r * v2 / μ
	a := r / (2 - rV2OnMu)
	if a <= 0 || math.IsInf(a, 0) {
		return nil, InvalidOrbitGeometryError{A: a, E: math.NaN()}
	}

	// Inclination vector from the momentum direction.
	w := unit(pv.Momentum())
	d := 1 / (1 + w[2]) // singular for purely retrograde orbits
	hx := -d * w[1]
	hy := d * w[0]

	// True latitude argument from the in-plane position components.
	cosλv := (pv.Position[0] - d*pv.Position[2]*w[0]) / r
	sinλv := (pv.Position[1] - d*pv.Position[2]*w[1]) / r
	λv := math.Atan2(sinλv, cosλv)

	// Eccentricity vector resolved along (cos λv, sin λv).
	eSE := dot(pv.Position, pv.Velocity) / math.Sqrt(μ*a)
	eCE := rV2OnMu - 1
	e2 := eCE*eCE + eSE*eSE
	if e2 >= 1 {
		return nil, InvalidOrbitGeometryError{A: a, E: math.Sqrt(e2)}
	}
	f := eCE - e2
	g := math.Sqrt(1-e2) * eSE
	ex := a * (f*cosλv + g*sinλv) / r
	ey := a * (f*sinλv - g*cosλv) / r

	return &EquinoctialParameters{a, ex, ey, hx, hy, λv, frame, new(pvCache)}, nil
}

// A returns the semi-major axis in meters.
func (ep *EquinoctialParameters) A() float64 { return ep.a }

// E returns the eccentricity.
func (ep *EquinoctialParameters) E() float64 { return math.Sqrt(ep.ex*ep.ex + ep.ey*ep.ey) }

// I returns the inclination in radians.
func (ep *EquinoctialParameters) I() float64 {
	return 2 * math.Atan(math.Sqrt(ep.hx*ep.hx+ep.hy*ep.hy))
}

// EquinoctialEx returns the first component of the eccentricity vector.
func (ep *EquinoctialParameters) EquinoctialEx() float64 { return ep.ex }

// EquinoctialEy returns the second component of the eccentricity vector.
func (ep *EquinoctialParameters) EquinoctialEy() float64 { return ep.ey }

// Hx returns the first component of the inclination vector.
func (ep *EquinoctialParameters) Hx() float64 { return ep.hx }

// Hy returns the second component of the inclination vector.
func (ep *EquinoctialParameters) Hy() float64 { return ep.hy }

// Lv returns the true latitude argument in radians.
func (ep *EquinoctialParameters) Lv() float64 { return ep.λv }

// LE returns the eccentric latitude argument in radians.
func (ep *EquinoctialParameters) LE() float64 {
	return trueToEccentricLatitude(ep.ex, ep.ey, ep.λv)
}

// LM returns the mean latitude argument in radians.
func (ep *EquinoctialParameters) LM() float64 {
	return eccentricToMeanLatitude(ep.ex, ep.ey, ep.LE())
}

// Frame returns the frame in which the parameters are defined.
func (ep *EquinoctialParameters) Frame() *Frame { return ep.frame }

// Equinoctial returns the receiver itself.
func (ep *EquinoctialParameters) Equinoctial() *EquinoctialParameters { return ep }

// PVCoordinates computes the position and velocity for the provided μ,
// memoized per the OrbitalParameters contract.
func (ep *EquinoctialParameters) PVCoordinates(μ float64) PVCoordinates {
	return ep.cache.get(μ, ep.computePV)
}

// computePV evaluates the closed-form cartesian state. The orbital-plane
// basis (U, V) comes straight from the inclination vector through the
// half-angle tangent identities, without any inverse trigonometry.
func (ep *EquinoctialParameters) computePV(μ float64) PVCoordinates {
	hx2 := ep.hx * ep.hx
	hy2 := ep.hy * ep.hy
	factH := 1 / (1 + hx2 + hy2)

	U := []float64{(1 + hx2 - hy2) * factH, 2 * ep.hx * ep.hy * factH, -2 * ep.hy * factH}
	V := []float64{2 * ep.hx * ep.hy * factH, (1 - hx2 + hy2) * factH, 2 * ep.hx * factH}

	ex, ey := ep.ex, ep.ey
	exey := ex * ey
	ex2 := ex * ex
	ey2 := ey * ey
	// β avoids the 1/(1+cos E) cancellation near e→1.
	β := 1 / (1 + math.Sqrt(1-ex2-ey2))

	λE := ep.LE()
	sinλE, cosλE := math.Sincos(λE)
	exCeyS := ex*cosλE + ey*sinλE

	x := ep.a * ((1-β*ey2)*cosλE + β*exey*sinλE - ex)
	y := ep.a * ((1-β*ex2)*sinλE + β*exey*cosλE - ey)

	factor := math.Sqrt(μ/ep.a) / (1 - exCeyS)
	xDot := factor * (-sinλE + β*ey*exCeyS)
	yDot := factor * (cosλE - β*ex*exCeyS)

	R := []float64{x*U[0] + y*V[0], x*U[1] + y*V[1], x*U[2] + y*V[2]}
	Vel := []float64{xDot*U[0] + yDot*V[0], xDot*U[1] + yDot*V[1], xDot*U[2] + yDot*V[2]}
	return PVCoordinates{R, Vel}
}

// String implements the Stringer interface.
func (ep *EquinoctialParameters) String() string {
	return fmt.Sprintf("equinoctial: a=%.1f ex=%.6f ey=%.6f hx=%.6f hy=%.6f λv=%.3f",
		ep.a, ep.ex, ep.ey, ep.hx, ep.hy, Rad2deg(ep.λv))
}
