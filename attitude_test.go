package orekit

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// dcmFromMRP rebuilds the direction cosine matrix from an MRP set
// (Schaub & Junkins eq. 3.152).
func dcmFromMRP(s *MRP) *mat64.Dense {
	σ2 := s.squared()
	tilde := mat64.NewDense(3, 3, []float64{
		0, -s.s3, s.s2,
		s.s3, 0, -s.s1,
		-s.s2, s.s1, 0,
	})
	var tilde2 mat64.Dense
	tilde2.Mul(tilde, tilde)
	denom := (1 + σ2) * (1 + σ2)
	C := mat64.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := 8*tilde2.At(i, j) - 4*(1-σ2)*tilde.At(i, j)
			if i == j {
				v += denom
			}
			C.Set(i, j, v/denom)
		}
	}
	return C
}

func TestMRPShort(t *testing.T) {
	s := &MRP{1, 1, 1}
	if s.norm() <= 1 {
		t.Fatal("fixture must start in long notation")
	}
	s.Short()
	if s.norm() > 1 {
		t.Fatalf("Short must switch to the shadow set, got norm %f", s.norm())
	}
	if !floats.EqualWithinAbs(s.s1, -1./3, 1e-15) {
		t.Fatalf("wrong shadow set: %+v", s)
	}
	// Already short sets are left alone.
	u := &MRP{0.1, 0.2, 0.3}
	u.Short()
	if u.s1 != 0.1 || u.s2 != 0.2 || u.s3 != 0.3 {
		t.Fatal("Short must not touch a set whose norm is below one")
	}
}

func TestMRPFromDCMRoundTrip(t *testing.T) {
	for _, C := range []*mat64.Dense{
		mat64.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
		R1(0.7), R2(-1.3), R3(2.9),
		R3R1R3(0.3, 1.1, -0.4),
	} {
		s := mrpFromDCM(C)
		back := dcmFromMRP(s)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if !floats.EqualWithinAbs(back.At(i, j), C.At(i, j), 1e-12) {
					t.Fatalf("DCM not recovered from σ=(%f, %f, %f):\nwant %v\ngot  %v",
						s.s1, s.s2, s.s3, mat64.Formatted(C), mat64.Formatted(back))
				}
			}
		}
	}
}

func TestInertialLaw(t *testing.T) {
	att := NewAttitude([3]float64{0.1, -0.2, 0.05}, [3]float64{0, 0, 1e-3})
	law := NewInertialLaw(att)
	pv := NewPVCoordinates([]float64{7e6, 0, 0}, []float64{0, 7.5e3, 0})
	for _, dt := range []time.Time{J2000, J2000.Add(48 * time.Hour)} {
		got, err := law.AttitudeAt(dt, pv, EME2000())
		if err != nil {
			t.Fatal(err)
		}
		if got.Orientation != att.Orientation {
			t.Fatal("inertial law must hold its attitude")
		}
	}
}

func TestBodyCenterPointing(t *testing.T) {
	r, v := 7e6, 7.5e3
	pv := NewPVCoordinates([]float64{r, 0, 0}, []float64{0, v, 0})
	att, err := BodyCenterPointing{}.AttitudeAt(J2000, pv, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	// For this equatorial state the body axes expressed inertially are
	// x=(0,1,0), y=(0,0,-1), z=(-1,0,0).
	C := dcmFromMRP(att.Orientation)
	want := [][]float64{{0, 1, 0}, {0, 0, -1}, {-1, 0, 0}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !floats.EqualWithinAbs(C.At(i, j), want[i][j], 1e-12) {
				t.Fatalf("wrong pointing frame:\n%v", mat64.Formatted(C))
			}
		}
	}
	if !floats.EqualWithinRel(math.Abs(att.Velocity.At(1, 0)), v/r, 1e-12) {
		t.Fatalf("pointing rate must be h/r², got %e", att.Velocity.At(1, 0))
	}
}

func TestBodyCenterPointingDegenerate(t *testing.T) {
	pv := NewPVCoordinates([]float64{7e6, 0, 0}, []float64{1e3, 0, 0})
	if _, err := (BodyCenterPointing{}).AttitudeAt(J2000, pv, EME2000()); err == nil {
		t.Fatal("collinear position and velocity must be rejected")
	}
}

func TestAttitudeLawFunc(t *testing.T) {
	called := false
	law := AttitudeLawFunc(func(dt time.Time, pv PVCoordinates, frame *Frame) (Attitude, error) {
		called = true
		return NewAttitude([3]float64{}, [3]float64{}), nil
	})
	if _, err := law.AttitudeAt(J2000, PVCoordinates{}, EME2000()); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("adapter must invoke the wrapped function")
	}
}
