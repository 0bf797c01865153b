package orekit

import (
	"time"

	"github.com/soniakeys/meeus/julian"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
)

// CelestialObject describes a central body. It only carries what two-body
// mechanics needs: the gravitational parameter μ is read via GM() and handed
// to orbit accessors at call time, it is never stored inside an orbit.
type CelestialObject struct {
	Name   string
	Radius float64 // mean equatorial radius (m)
	a      float64 // semi-major axis of the heliocentric orbit (m)
	μ      float64 // gravitational parameter (m³/s²)
	SOI    float64 // sphere of influence with respect to the Sun (m)
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI
}

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700e3, -1, 1.32712440017987e20, -1}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8e3, 108208601e3, 3.24858599e14, 0.616e9}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378136.3, 149598023e3, 3.986004418e14, 924645e3}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19e3, 227939282561.6, 4.28283100e13, 576000e3}

// J2000 is the standard astronomical reference epoch (JD 2451545.0).
var J2000 = julian.JDToTime(2451545.0)

// JulianDate returns the julian day of the provided date.
func JulianDate(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}
