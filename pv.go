package orekit

import "fmt"

// PVCoordinates holds a position (m) and velocity (m/s) pair expressed in a
// given frame. The zero value is the origin at rest.
type PVCoordinates struct {
	Position []float64
	Velocity []float64
}

// NewPVCoordinates returns a pair from the provided vectors. The slices are
// referenced, not copied.
func NewPVCoordinates(position, velocity []float64) PVCoordinates {
	return PVCoordinates{position, velocity}
}

// Copy returns a deep copy of this pair. Callers holding on to a pair
// returned by a cached getter must copy it first.
func (pv PVCoordinates) Copy() PVCoordinates {
	R := make([]float64, 3)
	V := make([]float64, 3)
	copy(R, pv.Position)
	copy(V, pv.Velocity)
	return PVCoordinates{R, V}
}

// RNorm returns the norm of the position vector.
func (pv PVCoordinates) RNorm() float64 {
	return norm(pv.Position)
}

// VNorm returns the norm of the velocity vector.
func (pv PVCoordinates) VNorm() float64 {
	return norm(pv.Velocity)
}

// Momentum returns the specific angular momentum vector R x V.
func (pv PVCoordinates) Momentum() []float64 {
	return cross(pv.Position, pv.Velocity)
}

// String implements the Stringer interface.
func (pv PVCoordinates) String() string {
	return fmt.Sprintf("{P(%.3f, %.3f, %.3f), V(%.6f, %.6f, %.6f)}",
		pv.Position[0], pv.Position[1], pv.Position[2],
		pv.Velocity[0], pv.Velocity[1], pv.Velocity[2])
}
