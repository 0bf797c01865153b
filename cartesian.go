package orekit

// CartesianParameters holds a raw position-velocity pair. It is the only
// singularity-free representation, but all element accessors delegate to an
// underlying equinoctial rendition computed once at construction, which is
// why the constructor is the only accessor needing μ: purely cartesian users
// pay the conversion once and analytical users get the elements for free.
type CartesianParameters struct {
	pv    PVCoordinates
	frame *Frame
	eq    *EquinoctialParameters
}

// NewCartesianParameters builds cartesian parameters from a position (m) and
// velocity (m/s) pair. The central attraction coefficient μ (m³/s²) is used
// solely for the one-time conversion to equinoctial form; it rejects
// non-elliptical states with an InvalidOrbitGeometryError.
func NewCartesianParameters(pv PVCoordinates, frame *Frame, μ float64) (*CartesianParameters, error) {
	eq, err := NewEquinoctialFromPV(pv, frame, μ)
	if err != nil {
		return nil, err
	}
	return &CartesianParameters{pv.Copy(), frame, eq}, nil
}

// NewCartesianFromParameters converts any variant to its cartesian
// rendition at the provided μ.
func NewCartesianFromParameters(op OrbitalParameters, μ float64) *CartesianParameters {
	eq := op.Equinoctial()
	return &CartesianParameters{eq.PVCoordinates(μ).Copy(), eq.frame, eq}
}

// A returns the semi-major axis in meters.
func (cp *CartesianParameters) A() float64 { return cp.eq.A() }

// E returns the eccentricity.
func (cp *CartesianParameters) E() float64 { return cp.eq.E() }

// I returns the inclination in radians.
func (cp *CartesianParameters) I() float64 { return cp.eq.I() }

// EquinoctialEx returns the first component of the eccentricity vector.
func (cp *CartesianParameters) EquinoctialEx() float64 { return cp.eq.ex }

// EquinoctialEy returns the second component of the eccentricity vector.
func (cp *CartesianParameters) EquinoctialEy() float64 { return cp.eq.ey }

// Hx returns the first component of the inclination vector.
func (cp *CartesianParameters) Hx() float64 { return cp.eq.hx }

// Hy returns the second component of the inclination vector.
func (cp *CartesianParameters) Hy() float64 { return cp.eq.hy }

// Lv returns the true latitude argument in radians.
func (cp *CartesianParameters) Lv() float64 { return cp.eq.Lv() }

// LE returns the eccentric latitude argument in radians.
func (cp *CartesianParameters) LE() float64 { return cp.eq.LE() }

// LM returns the mean latitude argument in radians.
func (cp *CartesianParameters) LM() float64 { return cp.eq.LM() }

// Frame returns the frame in which the parameters are defined.
func (cp *CartesianParameters) Frame() *Frame { return cp.frame }

// Equinoctial returns the canonical equinoctial rendition.
func (cp *CartesianParameters) Equinoctial() *EquinoctialParameters { return cp.eq }

// PVCoordinates returns the stored pair: a cartesian state does not depend
// on μ, so the parameter is ignored here.
func (cp *CartesianParameters) PVCoordinates(μ float64) PVCoordinates {
	return cp.pv
}

// String implements the Stringer interface.
func (cp *CartesianParameters) String() string {
	return "cartesian: " + cp.pv.String()
}
