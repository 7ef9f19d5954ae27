package rentalapi

import "carRental/internal/models"

type envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	Data    T      `json:"data"`
}

func (e envelope[T]) check(operation string) error {
	if e.Status != StatusSuccess {
		return &StatusError{Operation: operation, Status: e.Status, Message: e.Message}
	}
	return nil
}

type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Pincode     string `json:"pincode"`
}

type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Pincode   string `json:"pincode"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Auth is what a successful login or OTP verification returns. Token is
// empty when the API did not issue one.
type Auth struct {
	Token   string
	Message string
	User    *models.User
}
