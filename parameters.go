package orekit

import "sync/atomic"

// PositionAngle selects which flavor of anomaly (or latitude argument) a
// constructor receives: true, eccentric or mean.
type PositionAngle uint8

const (
	// TruePositionAngle is the angle measured from the focus.
	TruePositionAngle PositionAngle = iota + 1
	// EccentricPositionAngle is the angle measured from the ellipse center.
	EccentricPositionAngle
	// MeanPositionAngle grows linearly with time.
	MeanPositionAngle
)

func (p PositionAngle) String() string {
	switch p {
	case TruePositionAngle:
		return "true"
	case EccentricPositionAngle:
		return "eccentric"
	case MeanPositionAngle:
		return "mean"
	}
	panic("cannot stringify unknown position angle")
}

// OrbitalParameters is the closed family of orbital state representations.
// Every variant answers the same equinoctial-flavored accessors regardless
// of its native storage, so downstream code never branches on the variant.
// Implementations are immutable after construction; the only internal
// mutation is the μ-keyed position-velocity memoization, which is idempotent.
//
// For the sake of numerical stability, only the always non-ambiguous
// elements appear here (E and I rather than perigee argument or RAAN).
// Callers needing the ambiguous classical angles must convert explicitly to
// KeplerianParameters and accept an arbitrary ω/Ω split near circular or
// equatorial geometries.
type OrbitalParameters interface {
	// A returns the semi-major axis in meters.
	A() float64
	// E returns the eccentricity.
	E() float64
	// I returns the inclination in radians.
	I() float64
	// EquinoctialEx returns e·cos(ω+Ω), the first component of the eccentricity vector.
	EquinoctialEx() float64
	// EquinoctialEy returns e·sin(ω+Ω), the second component of the eccentricity vector.
	EquinoctialEy() float64
	// Hx returns tan(i/2)·cos(Ω), the first component of the inclination vector.
	Hx() float64
	// Hy returns tan(i/2)·sin(Ω), the second component of the inclination vector.
	Hy() float64
	// Lv returns the true latitude argument ν+ω+Ω in radians.
	Lv() float64
	// LE returns the eccentric latitude argument E+ω+Ω in radians.
	LE() float64
	// LM returns the mean latitude argument M+ω+Ω in radians.
	LM() float64
	// Frame returns the frame in which the parameters are defined.
	Frame() *Frame
	// Equinoctial returns the canonical equinoctial rendition of these
	// parameters, the single intermediate all conversions route through.
	Equinoctial() *EquinoctialParameters
	// PVCoordinates computes the position and velocity for the provided
	// central attraction coefficient μ (m³/s²). The result is memoized and
	// recomputed only when μ changes, and the returned slices alias the
	// memoized value: copy the pair before retaining it across calls.
	PVCoordinates(μ float64) PVCoordinates
	String() string
}

type pvEntry struct {
	μ  float64
	pv PVCoordinates
}

// pvCache is a lock-free memoization cell for position-velocity keyed by μ.
// Concurrent readers with differing μ may recompute redundantly but never
// observe a pair inconsistent with its key.
type pvCache struct {
	cell atomic.Value // pvEntry
}

func (c *pvCache) get(μ float64, compute func(μ float64) PVCoordinates) PVCoordinates {
	if entry, ok := c.cell.Load().(pvEntry); ok && entry.μ == μ {
		return entry.pv
	}
	pv := compute(μ)
	c.cell.Store(pvEntry{μ, pv})
	return pv
}
