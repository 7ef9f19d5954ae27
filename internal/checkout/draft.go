package checkout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"carRental/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	PaymentMethodRazorpay = "razorpay"
)

type BillingInfo struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

func (b BillingInfo) FullName() string {
	return models.User{FirstName: b.FirstName, LastName: b.LastName}.FullName()
}

type RentalInfo struct {
	PickUpDate      string `json:"pickUpDate" validate:"required,datetime=2006-01-02"`
	PickUpTime      string `json:"pickUpTime" validate:"required,datetime=15:04"`
	DropOffDate     string `json:"dropOffDate" validate:"required,datetime=2006-01-02"`
	DropOffTime     string `json:"dropOffTime" validate:"required,datetime=15:04"`
	PickUpLocation  string `json:"pickUpLocation" validate:"required"`
	DropOffLocation string `json:"dropOffLocation" validate:"required"`
}

// Range returns the pick-up and drop-off dates at UTC midnight. A same-day
// rental must also drop off later in the day than it picks up.
func (r RentalInfo) Range() (time.Time, time.Time, error) {
	pickUp, err := time.Parse(dateLayout, r.PickUpDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse pick-up date: %w", err)
	}

	dropOff, err := time.Parse(dateLayout, r.DropOffDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse drop-off date: %w", err)
	}

	if dropOff.Before(pickUp) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	if dropOff.Equal(pickUp) && !r.timesOrdered() {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	return pickUp, dropOff, nil
}

// timesOrdered reports whether drop-off time is after pick-up time. Times
// that do not parse are left to the field validation.
func (r RentalInfo) timesOrdered() bool {
	pickUp, err := time.Parse(timeLayout, r.PickUpTime)
	if err != nil {
		return true
	}

	dropOff, err := time.Parse(timeLayout, r.DropOffTime)
	if err != nil {
		return true
	}

	return dropOff.After(pickUp)
}

// Days is the number of billable rental days, one when the dates are unset.
func (r RentalInfo) Days() int {
	pickUp, dropOff, err := r.Range()
	if err != nil {
		return 1
	}
	return RentalDays(pickUp, dropOff)
}

type PaymentMethod struct {
	Method string `json:"method" validate:"required,oneof=razorpay"`
}

type Confirmation struct {
	Agreed bool `json:"agreed" validate:"required"`
}

// Draft is the client-held booking draft. It is never persisted.
type Draft struct {
	RentableID   models.ID     `json:"rentableId"`
	Billing      BillingInfo   `json:"billingInfo"`
	Rental       RentalInfo    `json:"rentalInfo"`
	Payment      PaymentMethod `json:"paymentMethod"`
	Confirmation Confirmation  `json:"confirmation"`
	Progress     Progress      `json:"progress"`

	pending *PendingPayment
}

// PendingPayment is the booking a payment order was created for. It is
// frozen at submit and is what verification books, whatever the form shows.
type PendingPayment struct {
	OrderID     string
	AmountMinor int64
	Input       BookingInput
	Billing     BillingInfo
	Expires     time.Time
}

// Pending returns the frozen booking of an open payment order.
func (d Draft) Pending() (PendingPayment, bool) {
	if d.pending == nil {
		return PendingPayment{}, false
	}
	return *d.pending, true
}

func NewDraft(rentableID models.ID) *Draft {
	return &Draft{
		RentableID: rentableID,
		Payment:    PaymentMethod{Method: PaymentMethodRazorpay},
		Progress:   Progress{PaymentValid: true},
	}
}

// Apply decodes data into the given section, stores it and records whether
// it is valid. Invalid data is still stored so the form keeps what the user
// typed; the returned error describes what is wrong with it.
func (d *Draft) Apply(validate *validator.Validate, section Section, data json.RawMessage) error {
	switch section {
	case SectionBilling:
		return applySection(d, validate, section, data, &d.Billing)
	case SectionRental:
		return applySection(d, validate, section, data, &d.Rental)
	case SectionPayment:
		return applySection(d, validate, section, data, &d.Payment)
	case SectionConfirmation:
		return applySection(d, validate, section, data, &d.Confirmation)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}

func applySection[T any](d *Draft, validate *validator.Validate, section Section, data json.RawMessage, dst *T) error {
	var v T

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&v); err != nil {
		d.Progress.Set(section, false)
		return fmt.Errorf("%w: %s: %v", ErrMalformed, section, err)
	}

	*dst = v

	err := d.validateSection(validate, section, dst)
	d.Progress.Set(section, err == nil)

	return err
}

// PrefillBilling fills an untouched billing section from the account.
func (d *Draft) PrefillBilling(validate *validator.Validate, u models.User) {
	if d.Billing != (BillingInfo{}) {
		return
	}

	d.Billing = BillingInfo{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
	}
	d.Progress.Set(SectionBilling, d.validateSection(validate, SectionBilling, &d.Billing) == nil)
}

func (d *Draft) validateSection(validate *validator.Validate, section Section, target any) error {
	if err := validate.Struct(target); err != nil {
		return err
	}

	if section == SectionRental {
		if _, _, err := d.Rental.Range(); err != nil {
			return err
		}
	}

	return nil
}
