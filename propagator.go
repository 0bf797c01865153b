package orekit

import (
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

/* Handles the analytical two-body propagation. */

// KeplerianPropagator advances a spacecraft state under pure two-body
// dynamics: the semi-major axis, eccentricity vector and inclination vector
// stay frozen while the mean latitude argument grows at the mean motion.
// The propagator is immutable and holds no shared mutable state, so a
// single instance may be used from several goroutines; every Propagate call
// is independent and supports both forward and backward targets.
type KeplerianPropagator struct {
	initial SpacecraftState
	law     AttitudeLaw
	μ       float64
	logger  kitlog.Logger
}

// NewKeplerianPropagator returns a propagator for the provided initial
// state and central attraction coefficient μ (m³/s²). A nil attitude law
// defaults to an inertial law frozen at the initial attitude. The initial
// orbit frame must be pseudo-inertial for two-body dynamics to hold.
func NewKeplerianPropagator(initial SpacecraftState, law AttitudeLaw, μ float64) *KeplerianPropagator {
	if law == nil {
		law = NewInertialLaw(initial.Attitude)
	}
	var klog kitlog.Logger
	if orekitConfig().quietLog {
		klog = kitlog.NewNopLogger()
	} else {
		klog = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
		klog = kitlog.With(klog, "subsys", "keplerian")
	}
	return &KeplerianPropagator{initial, law, μ, klog}
}

// Initial returns the initial state.
func (p *KeplerianPropagator) Initial() SpacecraftState {
	return p.initial
}

// Mu returns the central attraction coefficient used by this propagator.
func (p *KeplerianPropagator) Mu() float64 {
	return p.μ
}

// Propagate computes the state at the target date, which may precede the
// initial date. It fails with a NonConvergenceError if the Kepler equation
// cannot be inverted at the target, and with an AttitudeFailureError if the
// attitude law rejects the new state; no partial state is ever returned.
func (p *KeplerianPropagator) Propagate(target time.Time) (SpacecraftState, error) {
	orbit := p.initial.Orbit
	eq := orbit.Parameters().Equinoctial()
	Δt := target.Sub(orbit.Date()).Seconds()
	λM := eq.LM() + orbit.MeanMotion(p.μ)*Δt

	params, err := NewEquinoctialParameters(eq.a, eq.ex, eq.ey, eq.hx, eq.hy,
		λM, MeanPositionAngle, eq.frame)
	if err != nil {
		return SpacecraftState{}, err
	}
	newOrbit := NewOrbit(target, params)

	attitude, err := p.law.AttitudeAt(target, newOrbit.PVCoordinates(p.μ), newOrbit.Frame())
	if err != nil {
		return SpacecraftState{}, AttitudeFailureError{Date: target, Cause: err}
	}

	p.logger.Log("level", "debug", "date", target.UTC(),
		"jde", JulianDate(target), "Δt(s)", Δt, "orbit", params)
	return NewSpacecraftState(newOrbit, attitude, p.initial.Mass), nil
}
