// Package availability decides which listings are free for a requested
// rental window given the bookings that already exist.
package availability

import (
	"time"

	"carRental/internal/models"
)

// Conflicts reports whether the requested window collides with b.
//
// A request that ends before the booking starts, or starts at or after the
// booking ends, does not conflict. Turnover on the drop-off instant itself is
// allowed with no buffer.
func Conflicts(b models.Booking, pickUp, dropOff time.Time) bool {
	start := b.PickUpDate.Time
	end := b.DropOffDate.Time

	if dropOff.Before(start) || !pickUp.Before(end) {
		return false
	}

	return true
}

// FilterAvailable returns the cars that have no conflicting booking in
// [pickUp, dropOff]. Cars without bookings are always kept. Input order is
// preserved and the input slice is not modified.
func FilterAvailable(cars []models.RentableCar, bookings []models.Booking, pickUp, dropOff time.Time) []models.RentableCar {
	byCar := make(map[models.ID][]models.Booking, len(bookings))
	for _, b := range bookings {
		byCar[b.CarID] = append(byCar[b.CarID], b)
	}

	available := make([]models.RentableCar, 0, len(cars))

	for _, car := range cars {
		if isFree(byCar[car.Car.ID], pickUp, dropOff) {
			available = append(available, car)
		}
	}

	return available
}

func isFree(bookings []models.Booking, pickUp, dropOff time.Time) bool {
	for _, b := range bookings {
		if Conflicts(b, pickUp, dropOff) {
			return false
		}
	}

	return true
}
