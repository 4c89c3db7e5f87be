package entities

import (
	"errors"
	"math"
	"strconv"
)

var ErrNegativePrice = errors.New("price must not be negative")

// Monetary representation:
//   - minor units (int64 cents) only at the persistence boundary
//   - major units (float64) while resident in the Draft

// ToMajorUnits keeps full precision; rounding to two places happens only in
// FormatMajorUnits.
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// ToMinorUnits rounds half away from zero.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

func FormatMajorUnits(major float64) string {
	return strconv.FormatFloat(major, 'f', 2, 64)
}

// DiscountToMinorUnits maps "no discount entered" to nil (JSON null), never 0.
func DiscountToMinorUnits(major *float64) *int64 {
	if major == nil || math.IsNaN(*major) {
		return nil
	}
	v := ToMinorUnits(*major)
	return &v
}

func DiscountToMajorUnits(minor *int64) *float64 {
	if minor == nil {
		return nil
	}
	v := ToMajorUnits(*minor)
	return &v
}
