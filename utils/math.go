package utils

import (
	"math"
	"strconv"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Square returns n*n.
// Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// RoundDecimal rounds x to the given number of decimal places, half to even, measured against the
// exact binary value of x. Scaling by a power of ten first would turn values that sit just beside a
// decimal tie into exact ties.
func RoundDecimal(x float64, places int) float64 {
	//nolint:errcheck // FormatFloat output always parses
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	return rounded
}
