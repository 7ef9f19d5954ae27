package models

const BookingStatusSuccess = "success"

type Booking struct {
	ID              ID           `json:"id"`
	CarID           ID           `json:"carId"`
	UserID          ID           `json:"userId"`
	PickUpDate      Timestamp    `json:"pickUpDate"`
	PickUpTime      string       `json:"pickUpTime"`
	DropOffDate     Timestamp    `json:"dropOffDate"`
	DropOffTime     string       `json:"dropOffTime"`
	PickUpLocation  string       `json:"pickUpLocation"`
	DropOffLocation string       `json:"dropOffLocation"`
	Address         string       `json:"address"`
	PhoneNumber     string       `json:"phoneNumber,omitempty"`
	TotalPrice      float64      `json:"totalPrice"`
	Status          string       `json:"status"`
	Rentable        *RentableCar `json:"rentable,omitempty"`
	CreatedAt       *Timestamp   `json:"createdAt,omitempty"`
	UpdatedAt       *Timestamp   `json:"updatedAt,omitempty"`
}
