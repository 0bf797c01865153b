package orekit

import (
	"fmt"
	"math"
	"time"

	"github.com/gonum/matrix/mat64"
)

/*-----*/
/* Modified Rodrigez Parameters */
/*-----*/

// MRP defines Modified Rodrigez Parameters.
type MRP struct {
	s1, s2, s3 float64
}

func (s *MRP) squared() float64 {
	return s.s1*s.s1 + s.s2*s.s2 + s.s3*s.s3
}

func (s *MRP) norm() float64 {
	return math.Sqrt(s.squared())
}

// Short refreshes this MRP representation to use its short notation.
func (s *MRP) Short() {
	norm := s.norm()
	if norm > 1 {
		// Switch to shadow set.
		sq := s.squared()
		s.s1 = -s.s1 / sq
		s.s2 = -s.s2 / sq
		s.s3 = -s.s3 / sq
	}
}

// Attitude defines an orientation and an angular velocity at a given date.
type Attitude struct {
	Orientation *MRP
	Velocity    *mat64.Vector // angular velocity (rad/s)
}

// NewAttitude returns an Attitude from an MRP set and an angular velocity.
func NewAttitude(sigma [3]float64, omega [3]float64) Attitude {
	a := Attitude{}
	a.Orientation = &MRP{sigma[0], sigma[1], sigma[2]}
	a.Velocity = mat64.NewVector(3, []float64{omega[0], omega[1], omega[2]})
	return a
}

// String implements the Stringer interface.
func (a Attitude) String() string {
	return fmt.Sprintf("σ=(%.6f, %.6f, %.6f)", a.Orientation.s1, a.Orientation.s2, a.Orientation.s3)
}

// mrpFromDCM extracts the MRP set from a direction cosine matrix using
// Sheppard's method (via the Euler parameters), then shortens it.
func mrpFromDCM(C *mat64.Dense) *MRP {
	trace := C.At(0, 0) + C.At(1, 1) + C.At(2, 2)
	β2 := []float64{
		0.25 * (1 + trace),
		0.25 * (1 + 2*C.At(0, 0) - trace),
		0.25 * (1 + 2*C.At(1, 1) - trace),
		0.25 * (1 + 2*C.At(2, 2) - trace),
	}
	imax := 0
	for i, v := range β2 {
		if v > β2[imax] {
			imax = i
		}
	}
	var β0, β1v, β2v, β3 float64
	switch imax {
	case 0:
		β0 = math.Sqrt(β2[0])
		β1v = (C.At(1, 2) - C.At(2, 1)) / (4 * β0)
		β2v = (C.At(2, 0) - C.At(0, 2)) / (4 * β0)
		β3 = (C.At(0, 1) - C.At(1, 0)) / (4 * β0)
	case 1:
		β1v = math.Sqrt(β2[1])
		β0 = (C.At(1, 2) - C.At(2, 1)) / (4 * β1v)
		β2v = (C.At(0, 1) + C.At(1, 0)) / (4 * β1v)
		β3 = (C.At(2, 0) + C.At(0, 2)) / (4 * β1v)
	case 2:
		β2v = math.Sqrt(β2[2])
		β0 = (C.At(2, 0) - C.At(0, 2)) / (4 * β2v)
		β1v = (C.At(0, 1) + C.At(1, 0)) / (4 * β2v)
		β3 = (C.At(1, 2) + C.At(2, 1)) / (4 * β2v)
	case 3:
		β3 = math.Sqrt(β2[3])
		β0 = (C.At(0, 1) - C.At(1, 0)) / (4 * β3)
		β1v = (C.At(2, 0) + C.At(0, 2)) / (4 * β3)
		β2v = (C.At(1, 2) + C.At(2, 1)) / (4 * β3)
	}
	if β0 < 0 {
		β0, β1v, β2v, β3 = -β0, -β1v, -β2v, -β3
	}
	s := &MRP{β1v / (1 + β0), β2v / (1 + β0), β3 / (1 + β0)}
	s.Short()
	return s
}

// AttitudeLaw provides the attitude of a vehicle at a given date, position
// and velocity. It may fail, and the propagator surfaces such failures
// wrapped in an AttitudeFailureError instead of returning a partial state.
type AttitudeLaw interface {
	AttitudeAt(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error)
}

// AttitudeLawFunc adapts a plain function to the AttitudeLaw interface.
type AttitudeLawFunc func(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error)

// AttitudeAt calls f.
func (f AttitudeLawFunc) AttitudeAt(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error) {
	return f(dt, pv, frame)
}

// InertialLaw holds a fixed attitude regardless of date and position.
type InertialLaw struct {
	attitude Attitude
}

// NewInertialLaw returns a law which always answers the provided attitude.
func NewInertialLaw(a Attitude) InertialLaw {
	return InertialLaw{a}
}

// AttitudeAt returns the fixed attitude.
func (l InertialLaw) AttitudeAt(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error) {
	return l.attitude, nil
}

// BodyCenterPointing orients the vehicle with its third axis toward the
// body center and its second axis along the negative orbital momentum, and
// spins it at the instantaneous orbital rate about that momentum axis.
type BodyCenterPointing struct{}

// AttitudeAt computes the pointing attitude from the provided state. It
// fails on degenerate states whose position and velocity are collinear,
// since the orbital plane is then undefined.
func (l BodyCenterPointing) AttitudeAt(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error) {
	h := pv.Momentum()
	hNorm := norm(h)
	if hNorm == 0 {
		return Attitude{}, fmt.Errorf("degenerate state, R and V are collinear: %s", pv)
	}
	z := unit(pv.Position)
	for i := 0; i < 3; i++ {
		z[i] = -z[i]
	}
	y := unit(h)
	for i := 0; i < 3; i++ {
		y[i] = -y[i]
	}
	x := cross(y, z)
	C := mat64.NewDense(3, 3, []float64{
		x[0], x[1], x[2],
		y[0], y[1], y[2],
		z[0], z[1], z[2],
	})
	// Orbital rate about the momentum axis: ω = h/r².
	r := pv.RNorm()
	rate := hNorm / (r * r)
	return Attitude{mrpFromDCM(C), mat64.NewVector(3, []float64{0, -rate, 0})}, nil
}
