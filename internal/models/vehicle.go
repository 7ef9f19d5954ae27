package models

type Manufacturer struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

type Car struct {
	ID                 ID            `json:"id"`
	Name               string        `json:"name"`
	Type               string        `json:"type"`
	Description        string        `json:"description,omitempty"`
	NumberOfSeats      int           `json:"numberOfSeats"`
	FuelType           string        `json:"fuelType"`
	TransmissionType   string        `json:"transmissionType"`
	Quantity           int           `json:"quantity,omitempty"`
	Year               int           `json:"year,omitempty"`
	ManufacturerID     ID            `json:"manufacturerId,omitempty"`
	PrimaryImageURL    string        `json:"primaryImageUrl"`
	SecondaryImageURLs []string      `json:"secondaryImagesUrls,omitempty"`
	Manufacturer       *Manufacturer `json:"manufacturer,omitempty"`
}

// RentableCar is a listing: a car plus its daily price and stock.
type RentableCar struct {
	ID                ID      `json:"id"`
	CarID             ID      `json:"carId"`
	PricePerDay       float64 `json:"pricePerDay"`
	AvailableQuantity int     `json:"availableQuantity"`
	Car               Car     `json:"car"`
}
