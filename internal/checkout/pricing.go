package checkout

import (
	"math"
	"time"
)

// RentalDays counts calendar days inclusive of both ends and never returns
// less than one.
func RentalDays(pickUp, dropOff time.Time) int {
	days := int(math.Ceil(dropOff.Sub(pickUp).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

func TotalPrice(pricePerDay float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	return pricePerDay * float64(days)
}

// MinorUnits converts an amount in a two-decimal currency to its smallest
// unit, rounding to the nearest unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
