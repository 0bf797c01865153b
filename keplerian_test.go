package orekit

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestKeplerianRoundTripThroughCartesian(t *testing.T) {
	μ := Earth.GM()
	// keplerian -> cartesian -> keplerian over a grid excluding the
	// singular geometries (circular and equatorial handled separately).
	for _, e := range []float64{0.01, 0.3, 0.6, 0.9, 0.99} {
		for _, i := range []float64{0.1, 0.7854, 1.5708, 2.5, 3.0} {
			kp, err := NewKeplerianParameters(26678137, e, i, 0.5, 1.2, 2.2, TruePositionAngle, EME2000())
			if err != nil {
				t.Fatal(err)
			}
			pv := kp.PVCoordinates(μ)
			eq, err := NewEquinoctialFromPV(pv, EME2000(), μ)
			if err != nil {
				t.Fatal(err)
			}
			back := NewKeplerianFromParameters(eq)
			if !floats.EqualWithinRel(back.A(), kp.A(), relativeε) {
				t.Fatalf("e=%f i=%f: a %f != %f", e, i, back.A(), kp.A())
			}
			if !floats.EqualWithinAbs(back.E(), kp.E(), relativeε) {
				t.Fatalf("e=%f i=%f: e %.12f != %.12f", e, i, back.E(), kp.E())
			}
			if !floats.EqualWithinAbs(back.I(), kp.I(), relativeε) {
				t.Fatalf("e=%f i=%f: i %.12f != %.12f", e, i, back.I(), kp.I())
			}
			if ok, err := anglesEqual(back.RAAN(), kp.RAAN()); !ok {
				t.Fatalf("e=%f i=%f: Ω %s", e, i, err)
			}
			if ok, err := anglesEqual(back.PerigeeArgument(), kp.PerigeeArgument()); !ok {
				t.Fatalf("e=%f i=%f: ω %s", e, i, err)
			}
			if ok, err := anglesEqual(back.TrueAnomaly(), kp.TrueAnomaly()); !ok {
				t.Fatalf("e=%f i=%f: ν %s", e, i, err)
			}
		}
	}
}

func TestKeplerianAnomalyFlavors(t *testing.T) {
	a, e, i, ω, Ω := 24464560.0, 0.7311, 0.122138, 3.10686, 1.00681
	ref, err := NewKeplerianParameters(a, e, i, ω, Ω, 0.048363, TruePositionAngle, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	// Reseed with the derived eccentric and mean anomalies: all three
	// constructions describe the same state.
	fromE, err := NewKeplerianParameters(a, e, i, ω, Ω, ref.EccentricAnomaly(), EccentricPositionAngle, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	fromM, err := NewKeplerianParameters(a, e, i, ω, Ω, ref.MeanAnomaly(), MeanPositionAngle, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	for _, kp := range []*KeplerianParameters{fromE, fromM} {
		if ok, err := anglesEqual(kp.TrueAnomaly(), ref.TrueAnomaly()); !ok {
			t.Fatalf("true anomaly drifted: %s", err)
		}
	}
	// M = E - e·sinE must hold exactly in closed form.
	E := ref.EccentricAnomaly()
	if !floats.EqualWithinAbs(ref.MeanAnomaly(), E-e*math.Sin(E), 1e-12) {
		t.Fatal("Kepler's equation violated by the accessors")
	}
}

func TestKeplerianEquinoctialRelations(t *testing.T) {
	a, e, i, ω, Ω, ν := 24464560.0, 0.7311, 0.122138, 3.10686, 1.00681, 0.048363
	kp, err := NewKeplerianParameters(a, e, i, ω, Ω, ν, TruePositionAngle, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(kp.EquinoctialEx(), e*math.Cos(ω+Ω), 1e-15) {
		t.Fatal("ex relation broken")
	}
	if !floats.EqualWithinAbs(kp.EquinoctialEy(), e*math.Sin(ω+Ω), 1e-15) {
		t.Fatal("ey relation broken")
	}
	if !floats.EqualWithinAbs(kp.Hx(), math.Tan(i/2)*math.Cos(Ω), 1e-15) {
		t.Fatal("hx relation broken")
	}
	if !floats.EqualWithinAbs(kp.Hy(), math.Tan(i/2)*math.Sin(Ω), 1e-15) {
		t.Fatal("hy relation broken")
	}
	if ok, err := anglesEqual(kp.Lv(), ν+ω+Ω); !ok {
		t.Fatalf("λv relation broken: %s", err)
	}
	// The non-ambiguous elements survive the extraction.
	if !floats.EqualWithinRel(kp.Equinoctial().E(), e, 1e-12) {
		t.Fatal("eccentricity lost through equinoctial form")
	}
	if !floats.EqualWithinAbs(kp.Equinoctial().I(), i, 1e-12) {
		t.Fatal("inclination lost through equinoctial form")
	}
}

func TestKeplerianAmbiguousExtraction(t *testing.T) {
	μ := Earth.GM()
	// Circular orbit: ω is undefined, but ω+ν must still locate the vehicle.
	kp, err := NewKeplerianParameters(7200e3, 0, 1.2, 0.7, 0.3, 1.1, TruePositionAngle, EME2000())
	if err != nil {
		t.Fatal(err)
	}
	eq, err := NewEquinoctialFromPV(kp.PVCoordinates(μ), EME2000(), μ)
	if err != nil {
		t.Fatal(err)
	}
	back := NewKeplerianFromParameters(eq)
	// The split is arbitrary, the sum is not.
	if ok, err := anglesEqual(back.PerigeeArgument()+back.TrueAnomaly(), 0.7+1.1); !ok {
		t.Fatalf("ω+ν not preserved on a circular orbit: %s", err)
	}
	if !floats.EqualWithinAbs(back.E(), 0, 1e-10) {
		t.Fatalf("circular orbit gained eccentricity %e", back.E())
	}
}

func TestKeplerianRejectsBadGeometry(t *testing.T) {
	var geom InvalidOrbitGeometryError
	if _, err := NewKeplerianParameters(24464560, 1.2, 0.1, 0, 0, 0, TruePositionAngle, EME2000()); !errors.As(err, &geom) {
		t.Fatalf("expected InvalidOrbitGeometryError for e=1.2, got %v", err)
	}
	if _, err := NewKeplerianParameters(24464560, -0.1, 0.1, 0, 0, 0, TruePositionAngle, EME2000()); !errors.As(err, &geom) {
		t.Fatalf("expected InvalidOrbitGeometryError for e<0, got %v", err)
	}
	if _, err := NewKeplerianParameters(0, 0.1, 0.1, 0, 0, 0, TruePositionAngle, EME2000()); !errors.As(err, &geom) {
		t.Fatalf("expected InvalidOrbitGeometryError for a=0, got %v", err)
	}
}

func TestKeplerianVallado(t *testing.T) {
	// Vallado's RV2COE example (converted to SI units and Vallado's μ).
	μ := 3.986004415e14
	R := []float64{6524.834e3, 6862.875e3, 6448.296e3}
	V := []float64{4901.327, 5533.756, -1976.341}
	eq, err := NewEquinoctialFromPV(NewPVCoordinates(R, V), EME2000(), μ)
	if err != nil {
		t.Fatal(err)
	}
	kp := NewKeplerianFromParameters(eq)
	valladoε := 1e-4
	if !floats.EqualWithinRel(kp.A(), 36127.343e3, valladoε) {
		t.Fatalf("a=%f", kp.A())
	}
	if !floats.EqualWithinAbs(kp.E(), 0.832853, valladoε) {
		t.Fatalf("e=%f", kp.E())
	}
	if !floats.EqualWithinAbs(kp.I(), Deg2rad(87.869126), valladoε) {
		t.Fatalf("i=%f", Rad2deg(kp.I()))
	}
	if math.Abs(NormalizeAngle(kp.RAAN()-Deg2rad(227.898260), 0)) > valladoε {
		t.Fatalf("Ω=%f", Rad2deg(kp.RAAN()))
	}
	if math.Abs(NormalizeAngle(kp.PerigeeArgument()-Deg2rad(53.384931), 0)) > valladoε {
		t.Fatalf("ω=%f", Rad2deg(kp.PerigeeArgument()))
	}
	if math.Abs(NormalizeAngle(kp.TrueAnomaly()-Deg2rad(92.335157), 0)) > valladoε {
		t.Fatalf("ν=%f", Rad2deg(kp.TrueAnomaly()))
	}
}
