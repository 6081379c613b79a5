// Package numeric provides rounding and formatting of floating-point values
// to a fixed number of decimal places.
//
// Round, Floor and Ceil use a scale-then-divide scheme with a one-ulp bias
// (2^-52) so that decimal-exact inputs such as 1.005 land on the expected
// side despite their binary representation error:
//
//	numeric.Round(1.005, 2) // 1.01
//	numeric.Floor(2.999, 2) // 2.99
//	numeric.Ceil(2.991, 2)  // 3
//
// Negative precision is not supported.
package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// RadToDeg converts radians to degrees.
func RadToDeg(v float64) float64 {
	return v * 180 / math.Pi
}

// DegToRad converts degrees to radians.
func DegToRad(v float64) float64 {
	return v * math.Pi / 180
}

// Round rounds num to places decimal digits. Halves round toward +Inf.
func Round(num float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Floor(float64((num+epsilon)*factor)+0.5) / factor
}

// RoundAndFormat formats num with exactly places decimal digits.
//
// The exact binary value of num is rounded; a value exactly halfway
// between two results takes the one of larger magnitude, so 2.5 gives "3"
// and -2.5 gives "-3". 1.005 is stored slightly below the half and gives
// "1.00". Negative places count as zero.
func RoundAndFormat(num float64, places int) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return strconv.FormatFloat(num, 'f', places, 64)
	}
	places = max(places, 0)

	neg := num < 0
	x := new(big.Rat).SetFloat64(math.Abs(num))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x.Mul(x, new(big.Rat).SetInt(scale))
	x.Add(x, big.NewRat(1, 2))
	digits := new(big.Int).Quo(x.Num(), x.Denom()).String()

	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		cut := len(digits) - places
		digits = digits[:cut] + "." + digits[cut:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// Floor rounds num toward -Inf at the given decimal precision.
func Floor(num float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Floor(float64(num*factor)+epsilon) / factor
}

// Ceil rounds num toward +Inf at the given decimal precision.
func Ceil(num float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Ceil(float64(num*factor)-epsilon) / factor
}

// Clamp restricts v to the inclusive range [lo, hi].
// NaN is returned unchanged.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
