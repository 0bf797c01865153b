package orekit

// Frame is an opaque reference frame handle. Frames are compared by
// reference: two orbits share a frame only if they hold the very same
// pointer. This package never builds transformation trees; a frame handed
// to an orbit or a propagator must already be pseudo-inertial, which is a
// documented precondition and is not validated here.
type Frame struct {
	name           string
	pseudoInertial bool
}

// NewFrame returns a fresh frame handle with the given name.
func NewFrame(name string, pseudoInertial bool) *Frame {
	return &Frame{name, pseudoInertial}
}

// Name returns the name this frame was created with.
func (f *Frame) Name() string {
	return f.name
}

// IsPseudoInertial returns whether the frame was declared pseudo-inertial.
func (f *Frame) IsPseudoInertial() bool {
	return f.pseudoInertial
}

// String implements the Stringer interface.
func (f *Frame) String() string {
	return f.name
}

var (
	eme2000 = NewFrame("EME2000", true)
	gcrf    = NewFrame("GCRF", true)
)

// EME2000 returns the shared Earth mean equator 2000 frame handle.
func EME2000() *Frame {
	return eme2000
}

// GCRF returns the shared geocentric celestial reference frame handle.
func GCRF() *Frame {
	return gcrf
}
