package orekit

import (
	"fmt"
	"math"
)

// CircularParameters holds the circular orbital elements: the eccentricity
// is decomposed as (ex,ey) = e·(cos ω, sin ω) so that circular orbits stay
// well-posed, while the node is kept explicit. The representation is still
// singular for equatorial orbits (i≈0 or π leaves Ω ambiguous).
type CircularParameters struct {
	a      float64
	ex, ey float64 // e·(cos,sin)(ω), the circular eccentricity vector
	i      float64
	Ω      float64 // right ascension of the ascending node (rad)
	αv     float64 // true latitude argument ν+ω (rad)
	eq     *EquinoctialParameters
}

// NewCircularParameters builds circular elements from a, the circular
// eccentricity vector, i, RAAN and a latitude argument α of the provided
// flavor. Angles are in radians.
func NewCircularParameters(a, ex, ey, i, Ω, α float64, typ PositionAngle, frame *Frame) (*CircularParameters, error) {
	e := math.Sqrt(ex*ex + ey*ey)
	if a <= 0 || e >= 1 {
		return nil, InvalidOrbitGeometryError{A: a, E: e}
	}
	var αv float64
	switch typ {
	case MeanPositionAngle:
		αE, err := meanToEccentricLatitude(ex, ey, α)
		if err != nil {
			return nil, err
		}
		αv = eccentricToTrueLatitude(ex, ey, αE)
	case EccentricPositionAngle:
		αv = eccentricToTrueLatitude(ex, ey, α)
	case TruePositionAngle:
		αv = α
	default:
		panic(fmt.Errorf("unknown position angle %d", typ))
	}
	sinΩ, cosΩ := math.Sincos(Ω)
	tanI2 := math.Tan(i / 2)
	eq, err := NewEquinoctialParameters(a, ex*cosΩ-ey*sinΩ, ex*sinΩ+ey*cosΩ,
		tanI2*cosΩ, tanI2*sinΩ, αv+Ω, TruePositionAngle, frame)
	if err != nil {
		return nil, err
	}
	return &CircularParameters{a, ex, ey, i, Ω, αv, eq}, nil
}

// NewCircularFromParameters converts any variant to circular elements. The
// node extraction uses atan2 on the inclination vector and is therefore an
// arbitrary principal value for near-equatorial orbits.
func NewCircularFromParameters(op OrbitalParameters) *CircularParameters {
	eq := op.Equinoctial()
	Ω := math.Atan2(eq.hy, eq.hx)
	sinΩ, cosΩ := math.Sincos(Ω)
	return &CircularParameters{
		a:  eq.a,
		ex: eq.ex*cosΩ + eq.ey*sinΩ,
		ey: -eq.ex*sinΩ + eq.ey*cosΩ,
		i:  eq.I(),
		Ω:  Ω,
		αv: eq.λv - Ω,
		eq: eq,
	}
}

// A returns the semi-major axis in meters.
func (cp *CircularParameters) A() float64 { return cp.a }

// E returns the eccentricity.
func (cp *CircularParameters) E() float64 { return math.Sqrt(cp.ex*cp.ex + cp.ey*cp.ey) }

// I returns the inclination in radians.
func (cp *CircularParameters) I() float64 { return cp.i }

// CircularEx returns e·cos(ω), the first circular eccentricity component.
func (cp *CircularParameters) CircularEx() float64 { return cp.ex }

// CircularEy returns e·sin(ω), the second circular eccentricity component.
func (cp *CircularParameters) CircularEy() float64 { return cp.ey }

// RAAN returns the right ascension of the ascending node in radians, which
// is ambiguous when i≈0 or i≈π.
func (cp *CircularParameters) RAAN() float64 { return cp.Ω }

// AlphaV returns the true latitude argument ν+ω in radians.
func (cp *CircularParameters) AlphaV() float64 { return cp.αv }

// AlphaE returns the eccentric latitude argument E+ω in radians.
func (cp *CircularParameters) AlphaE() float64 {
	return trueToEccentricLatitude(cp.ex, cp.ey, cp.αv)
}

// AlphaM returns the mean latitude argument M+ω in radians.
func (cp *CircularParameters) AlphaM() float64 {
	return eccentricToMeanLatitude(cp.ex, cp.ey, cp.AlphaE())
}

// EquinoctialEx returns the first component of the eccentricity vector.
func (cp *CircularParameters) EquinoctialEx() float64 { return cp.eq.ex }

// EquinoctialEy returns the second component of the eccentricity vector.
func (cp *CircularParameters) EquinoctialEy() float64 { return cp.eq.ey }

// Hx returns the first component of the inclination vector.
func (cp *CircularParameters) Hx() float64 { return cp.eq.hx }

// Hy returns the second component of the inclination vector.
func (cp *CircularParameters) Hy() float64 { return cp.eq.hy }

// Lv returns the true latitude argument in radians.
func (cp *CircularParameters) Lv() float64 { return cp.eq.Lv() }

// LE returns the eccentric latitude argument in radians.
func (cp *CircularParameters) LE() float64 { return cp.eq.LE() }

// LM returns the mean latitude argument in radians.
func (cp *CircularParameters) LM() float64 { return cp.eq.LM() }

// Frame returns the frame in which the parameters are defined.
func (cp *CircularParameters) Frame() *Frame { return cp.eq.frame }

// Equinoctial returns the canonical equinoctial rendition.
func (cp *CircularParameters) Equinoctial() *EquinoctialParameters { return cp.eq }

// PVCoordinates computes the position and velocity for the provided μ.
func (cp *CircularParameters) PVCoordinates(μ float64) PVCoordinates {
	return cp.eq.PVCoordinates(μ)
}

// String implements the Stringer interface.
func (cp *CircularParameters) String() string {
	return fmt.Sprintf("circular: a=%.1f ex=%.6f ey=%.6f i=%.3f Ω=%.3f αv=%.3f",
		cp.a, cp.ex, cp.ey, Rad2deg(cp.i), Rad2deg(cp.Ω), Rad2deg(cp.αv))
}
