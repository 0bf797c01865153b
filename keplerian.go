package orekit

import (
	"fmt"
	"math"
)

// KeplerianParameters holds the classical orbital elements. This is the
// representation of choice for humans, but it is singular for circular
// (ω undefined) and equatorial (Ω undefined) orbits: building it from
// another variant near those geometries yields an arbitrary ω/Ω split.
type KeplerianParameters struct {
	a, e, i float64
	ω       float64 // perigee argument (rad)
	Ω       float64 // right ascension of the ascending node (rad)
	ν       float64 // true anomaly (rad)
	eq      *EquinoctialParameters
}

// NewKeplerianParameters builds classical elements from a, e (must be in
// [0,1)), i, perigee argument, RAAN and an anomaly of the provided flavor.
// Angles are in radians.
func NewKeplerianParameters(a, e, i, ω, Ω, anomaly float64, typ PositionAngle, frame *Frame) (*KeplerianParameters, error) {
	if a <= 0 || e < 0 || e >= 1 {
		return nil, InvalidOrbitGeometryError{A: a, E: e}
	}
	var ν float64
	switch typ {
	case MeanPositionAngle:
		E, err := meanToEccentricLatitude(e, 0, anomaly)
		if err != nil {
			return nil, err
		}
		ν = eccentricToTrueLatitude(e, 0, E)
	case EccentricPositionAngle:
		ν = eccentricToTrueLatitude(e, 0, anomaly)
	case TruePositionAngle:
		ν = anomaly
	default:
		panic(fmt.Errorf("unknown position angle %d", typ))
	}
	kp := &KeplerianParameters{a: a, e: e, i: i, ω: ω, Ω: Ω, ν: ν}
	// The equinoctial relations are purely algebraic, so this cannot fail
	// once a and e have been validated.
	sinΩ, cosΩ := math.Sincos(Ω)
	tanI2 := math.Tan(i / 2)
	sinωΩ, cosωΩ := math.Sincos(ω + Ω)
	eq, err := NewEquinoctialParameters(a, e*cosωΩ, e*sinωΩ, tanI2*cosΩ, tanI2*sinΩ,
		ν+ω+Ω, TruePositionAngle, frame)
	if err != nil {
		return nil, err
	}
	kp.eq = eq
	return kp, nil
}

// NewKeplerianFromParameters converts any variant to classical elements by
// extracting them from its equinoctial rendition. Near-circular and
// near-equatorial geometries make the (ex,ey) and (hx,hy) arctangents
// ill-conditioned: the principal values returned by atan2 are then an
// arbitrary but self-consistent ω/Ω split.
func NewKeplerianFromParameters(op OrbitalParameters) *KeplerianParameters {
	eq := op.Equinoctial()
	Ω := math.Atan2(eq.hy, eq.hx)
	ωΩ := math.Atan2(eq.ey, eq.ex)
	return &KeplerianParameters{
		a:  eq.a,
		e:  eq.E(),
		i:  eq.I(),
		ω:  ωΩ - Ω,
		Ω:  Ω,
		ν:  eq.λv - ωΩ,
		eq: eq,
	}
}

// A returns the semi-major axis in meters.
func (kp *KeplerianParameters) A() float64 { return kp.a }

// E returns the eccentricity.
func (kp *KeplerianParameters) E() float64 { return kp.e }

// I returns the inclination in radians.
func (kp *KeplerianParameters) I() float64 { return kp.i }

// PerigeeArgument returns ω in radians, which is ambiguous when e≈0.
func (kp *KeplerianParameters) PerigeeArgument() float64 { return kp.ω }

// RAAN returns the right ascension of the ascending node in radians, which
// is ambiguous when i≈0 or i≈π.
func (kp *KeplerianParameters) RAAN() float64 { return kp.Ω }

// TrueAnomaly returns ν in radians.
func (kp *KeplerianParameters) TrueAnomaly() float64 { return kp.ν }

// EccentricAnomaly returns E in radians.
func (kp *KeplerianParameters) EccentricAnomaly() float64 {
	return trueToEccentricLatitude(kp.e, 0, kp.ν)
}

// MeanAnomaly returns M in radians.
func (kp *KeplerianParameters) MeanAnomaly() float64 {
	return eccentricToMeanLatitude(kp.e, 0, kp.EccentricAnomaly())
}

// EquinoctialEx returns the first component of the eccentricity vector.
func (kp *KeplerianParameters) EquinoctialEx() float64 { return kp.eq.ex }

// EquinoctialEy returns the second component of the eccentricity vector.
func (kp *KeplerianParameters) EquinoctialEy() float64 { return kp.eq.ey }

// Hx returns the first component of the inclination vector.
func (kp *KeplerianParameters) Hx() float64 { return kp.eq.hx }

// Hy returns the second component of the inclination vector.
func (kp *KeplerianParameters) Hy() float64 { return kp.eq.hy }

// Lv returns the true latitude argument in radians.
func (kp *KeplerianParameters) Lv() float64 { return kp.eq.Lv() }

// LE returns the eccentric latitude argument in radians.
func (kp *KeplerianParameters) LE() float64 { return kp.eq.LE() }

// LM returns the mean latitude argument in radians.
func (kp *KeplerianParameters) LM() float64 { return kp.eq.LM() }

// Frame returns the frame in which the parameters are defined.
func (kp *KeplerianParameters) Frame() *Frame { return kp.eq.frame }

// Equinoctial returns the canonical equinoctial rendition.
func (kp *KeplerianParameters) Equinoctial() *EquinoctialParameters { return kp.eq }

// PVCoordinates computes the position and velocity for the provided μ.
func (kp *KeplerianParameters) PVCoordinates(μ float64) PVCoordinates {
	return kp.eq.PVCoordinates(μ)
}

// String implements the Stringer interface.
func (kp *KeplerianParameters) String() string {
	return fmt.Sprintf("keplerian: a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f",
		kp.a, kp.e, Rad2deg(kp.i), Rad2deg(kp.Ω), Rad2deg(kp.ω), Rad2deg(kp.ν))
}
