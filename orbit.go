package orekit

import (
	"fmt"
	"math"
	"time"
)

// Orbit is a state at a specific date: an immutable pairing of a date and
// one OrbitalParameters variant. Orbit exclusively owns its parameters
// instance; the frame inside the parameters is a shared handle that is never
// mutated. Evolution over time is the business of the propagator, which
// produces fresh Orbit values instead of mutating this one.
type Orbit struct {
	dt     time.Time
	params OrbitalParameters
}

// NewOrbit wraps a date and orbital parameters into an orbit. The caller
// hands over ownership of params and must not share it with another orbit.
func NewOrbit(dt time.Time, params OrbitalParameters) *Orbit {
	return &Orbit{dt, params}
}

// Date returns the date of this state.
func (o *Orbit) Date() time.Time { return o.dt }

// Parameters returns the underlying representation.
func (o *Orbit) Parameters() OrbitalParameters { return o.params }

// Frame returns the frame the parameters are defined in.
func (o *Orbit) Frame() *Frame { return o.params.Frame() }

// A returns the semi-major axis in meters.
func (o *Orbit) A() float64 { return o.params.A() }

// E returns the eccentricity.
func (o *Orbit) E() float64 { return o.params.E() }

// I returns the inclination in radians.
func (o *Orbit) I() float64 { return o.params.I() }

// EquinoctialEx returns the first component of the eccentricity vector.
func (o *Orbit) EquinoctialEx() float64 { return o.params.EquinoctialEx() }

// EquinoctialEy returns the second component of the eccentricity vector.
func (o *Orbit) EquinoctialEy() float64 { return o.params.EquinoctialEy() }

// Hx returns the first component of the inclination vector.
func (o *Orbit) Hx() float64 { return o.params.Hx() }

// Hy returns the second component of the inclination vector.
func (o *Orbit) Hy() float64 { return o.params.Hy() }

// Lv returns the true latitude argument in radians.
func (o *Orbit) Lv() float64 { return o.params.Lv() }

// LE returns the eccentric latitude argument in radians.
func (o *Orbit) LE() float64 { return o.params.LE() }

// LM returns the mean latitude argument in radians.
func (o *Orbit) LM() float64 { return o.params.LM() }

// PVCoordinates computes the position and velocity of the satellite for the
// provided μ. The result is cached and recomputed only when μ changes
// across calls; the returned slices alias the cache, so copy the pair if it
// must outlive the next call with a different μ.
func (o *Orbit) PVCoordinates(μ float64) PVCoordinates {
	return o.params.PVCoordinates(μ)
}

// Energyξ returns the specific mechanical energy ξ for the provided μ.
func (o *Orbit) Energyξ(μ float64) float64 {
	return -μ / (2 * o.A())
}

// MeanMotion returns the mean motion n = √(μ/a³) in rad/s.
func (o *Orbit) MeanMotion(μ float64) float64 {
	a := o.A()
	return math.Sqrt(μ/a) / a
}

// Period returns the period of this orbit for the provided μ.
func (o *Orbit) Period(μ float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	seconds := 2 * math.Pi / o.MeanMotion(μ)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// Apoapsis returns the apoapsis radius a(1+e) in meters.
func (o *Orbit) Apoapsis() float64 {
	return o.A() * (1 + o.E())
}

// Periapsis returns the periapsis radius a(1-e) in meters.
func (o *Orbit) Periapsis() float64 {
	return o.A() * (1 - o.E())
}

// HNorm returns the norm of the specific angular momentum √(μ·a·(1-e²)).
func (o *Orbit) HNorm(μ float64) float64 {
	e := o.E()
	return math.Sqrt(μ * o.A() * (1 - e*e))
}

// AsEquinoctial returns this state with parameters converted to
// equinoctial form.
func (o *Orbit) AsEquinoctial() *Orbit {
	return &Orbit{o.dt, o.params.Equinoctial()}
}

// AsKeplerian returns this state with parameters converted to classical
// keplerian elements (with an arbitrary ω/Ω split for circular or
// equatorial geometries).
func (o *Orbit) AsKeplerian() *Orbit {
	return &Orbit{o.dt, NewKeplerianFromParameters(o.params)}
}

// AsCircular returns this state with parameters converted to circular
// elements.
func (o *Orbit) AsCircular() *Orbit {
	return &Orbit{o.dt, NewCircularFromParameters(o.params)}
}

// AsCartesian returns this state with parameters converted to a cartesian
// position-velocity pair at the provided μ.
func (o *Orbit) AsCartesian(μ float64) *Orbit {
	return &Orbit{o.dt, NewCartesianFromParameters(o.params, μ)}
}

// String implements the Stringer interface.
func (o *Orbit) String() string {
	return fmt.Sprintf("{%s %s %s}", o.dt.UTC().Format(time.RFC3339), o.Frame(), o.params)
}
