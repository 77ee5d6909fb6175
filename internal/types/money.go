// README: Common money rounding helpers used across modules.
package types

import "math"

// Round2 rounds a dollar amount to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cents returns the integer cent value of an already-rounded amount.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
