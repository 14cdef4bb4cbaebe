package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(90), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180.)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
	test.That(t, DegToRad(-720), test.ShouldAlmostEqual, -4*math.Pi)
	test.That(t, DegToRad(0), test.ShouldEqual, 0.)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9.)
	test.That(t, Square(-1.5), test.ShouldEqual, 2.25)
	test.That(t, Square(0), test.ShouldEqual, 0.)
}

func TestRoundDecimal(t *testing.T) {
	for _, tc := range []struct {
		x        float64
		places   int
		expected float64
	}{
		// the nearest doubles to these literals lie just above or below the tie
		{0.00025, 4, 0.0003},
		{0.00015, 4, 0.0001},
		{2.675, 2, 2.67},
		{0.12345, 4, 0.1235},
		{0.99995, 4, 1},
		{-0.99995, 4, -1},
		{1.00005, 4, 1.0001},
		// exact ties go to even
		{0.5, 0, 0},
		{1.5, 0, 2},
		{0.375, 2, 0.38},
		{3, 4, 3},
	} {
		test.That(t, RoundDecimal(tc.x, tc.places), test.ShouldEqual, tc.expected)
	}
	test.That(t, math.IsNaN(RoundDecimal(math.NaN(), 4)), test.ShouldBeTrue)
}
