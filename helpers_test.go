package orekit

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

const (
	angleε    = 1e-9 // radians
	relativeε = 1e-9
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbsOrRel(a[i], b[i], tol, tol) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in radians are equal modulo 2π.
func anglesEqual(a, b float64) (bool, error) {
	diff := NormalizeAngle(a-b, 0)
	if math.Abs(diff) < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.12f radians", math.Abs(diff))
}
