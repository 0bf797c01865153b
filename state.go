package orekit

import (
	"fmt"
	"time"
)

// SpacecraftState is the consumer-facing aggregate of an orbit, the
// attitude at the orbit date and the vehicle mass. It is never mutated:
// propagation builds new instances.
type SpacecraftState struct {
	Orbit    *Orbit
	Attitude Attitude
	Mass     float64 // kg
}

// NewSpacecraftState aggregates an orbit, an attitude and a mass.
func NewSpacecraftState(o *Orbit, attitude Attitude, mass float64) SpacecraftState {
	return SpacecraftState{o, attitude, mass}
}

// Date returns the date of the wrapped orbit.
func (s SpacecraftState) Date() time.Time {
	return s.Orbit.Date()
}

// Frame returns the frame of the wrapped orbit.
func (s SpacecraftState) Frame() *Frame {
	return s.Orbit.Frame()
}

// PVCoordinates computes the position and velocity at the provided μ.
func (s SpacecraftState) PVCoordinates(μ float64) PVCoordinates {
	return s.Orbit.PVCoordinates(μ)
}

// String implements the Stringer interface.
func (s SpacecraftState) String() string {
	return fmt.Sprintf("{%s %s mass=%.1fkg}", s.Orbit, s.Attitude, s.Mass)
}
