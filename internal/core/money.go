// AngelaMos | 2026
// money.go

package core

import "math"

// ToMinorUnits converts a decimal currency amount to cents, rounding half
// away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromMinorUnits(cents int64) float64 {
	return float64(cents) / 100
}
