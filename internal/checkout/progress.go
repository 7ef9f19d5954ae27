package checkout

import "fmt"

// Section names one of the four checkout sub-forms.
type Section string

const (
	SectionBilling      Section = "billingInfo"
	SectionRental       Section = "rentalInfo"
	SectionPayment      Section = "paymentMethod"
	SectionConfirmation Section = "confirmation"
)

func ParseSection(s string) (Section, error) {
	switch sec := Section(s); sec {
	case SectionBilling, SectionRental, SectionPayment, SectionConfirmation:
		return sec, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
}

// Progress records which sub-forms currently report themselves valid.
type Progress struct {
	BillingValid      bool `json:"billingInfo"`
	RentalValid       bool `json:"rentalInfo"`
	PaymentValid      bool `json:"paymentMethod"`
	ConfirmationValid bool `json:"confirmation"`
}

// Ready is true only while all four sub-forms are valid.
func (p Progress) Ready() bool {
	return p.BillingValid && p.RentalValid && p.PaymentValid && p.ConfirmationValid
}

func (p *Progress) Set(section Section, valid bool) {
	switch section {
	case SectionBilling:
		p.BillingValid = valid
	case SectionRental:
		p.RentalValid = valid
	case SectionPayment:
		p.PaymentValid = valid
	case SectionConfirmation:
		p.ConfirmationValid = valid
	}
}
