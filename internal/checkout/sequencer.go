package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"

	"github.com/google/uuid"
)

const (
	OrderStatusSuccess     = "success"
	OrderStatusUnavailable = "unavailable"
	OrderStatusConflict    = "conflict"

	DashboardPath = "/user-dashboard"
)

// BookingInput is the booking draft in the shape the remote API accepts for
// both order generation and verification.
type BookingInput struct {
	RentableID      int     `json:"rentableId"`
	CarID           int     `json:"carId"`
	PickUpDate      string  `json:"pickUpDate"`
	PickUpTime      string  `json:"pickUpTime"`
	DropOffDate     string  `json:"dropOffDate"`
	DropOffTime     string  `json:"dropOffTime"`
	PickUpLocation  string  `json:"pickUpLocation"`
	DropOffLocation string  `json:"dropOffLocation"`
	TotalPrice      float64 `json:"totalPrice"`
	UserInfo        string  `json:"userInfo"`
	PhoneNumber     string  `json:"phoneNumber"`
	Address         string  `json:"address"`
}

type PaymentOrder struct {
	Status   string
	Message  string
	OrderID  string
	Amount   int64
	Currency string
}

// PaymentProof carries the fields the payment widget hands back on success.
type PaymentProof struct {
	PaymentID string `json:"razorpayPaymentId" validate:"required"`
	OrderID   string `json:"razorpayOrderId" validate:"required"`
	Signature string `json:"razorpaySignature" validate:"required"`
}

type Verification struct {
	Status  string
	Message string
	Booking *models.Booking
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentGateway
type PaymentGateway interface {
	GeneratePaymentOrder(ctx context.Context, token, idempotencyKey string, totalPrice float64, in BookingInput) (*PaymentOrder, error)
	VerifyPaymentAndCreateBooking(ctx context.Context, token, idempotencyKey string, proof PaymentProof, in BookingInput) (*Verification, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WidgetLoader
type WidgetLoader interface {
	Load(ctx context.Context) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking models.Booking, user models.User, billing BillingInfo)
}

// WidgetSettings are the merchant-side values the payment widget is opened
// with.
type WidgetSettings struct {
	KeyID       string
	Currency    string
	Merchant    string
	Description string
	ThemeColor  string
}

type WidgetPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type WidgetTheme struct {
	Color string `json:"color"`
}

// WidgetOptions configure the client-side payment widget for one order.
type WidgetOptions struct {
	Key            string        `json:"key"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	OrderID        string        `json:"order_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Prefill        WidgetPrefill `json:"prefill"`
	Theme          WidgetTheme   `json:"theme"`
	IdempotencyKey string        `json:"idempotency_key"`
}

type SubmitRequest struct {
	SessionID string
	Token     string
	Car       *models.RentableCar
	User      *models.User
}

type VerifyRequest struct {
	SessionID string
	Token     string
	Car       *models.RentableCar
	User      *models.User
	Proof     PaymentProof
}

// Booked is the outcome of a verified checkout.
type Booked struct {
	Booking  *models.Booking `json:"booking"`
	Redirect string          `json:"redirect"`
}

type Sequencer struct {
	log      *slog.Logger
	drafts   *Drafts
	gateway  PaymentGateway
	widget   WidgetLoader
	ledger   AttemptLedger
	notifier Notifier
	settings WidgetSettings
}

func NewSequencer(
	log *slog.Logger,
	drafts *Drafts,
	gateway PaymentGateway,
	widget WidgetLoader,
	ledger AttemptLedger,
	notifier Notifier,
	settings WidgetSettings,
) *Sequencer {
	return &Sequencer{
		log:      log,
		drafts:   drafts,
		gateway:  gateway,
		widget:   widget,
		ledger:   ledger,
		notifier: notifier,
		settings: settings,
	}
}

// Submit runs the first phase of checkout: it requests a payment order for
// the draft and returns the options the payment widget must be opened with.
// It does nothing and returns ErrNotReady unless every sub-form is valid and
// both the listing and the user are loaded.
func (s *Sequencer) Submit(ctx context.Context, req SubmitRequest) (*WidgetOptions, error) {
	const op = "checkout.Sequencer.Submit"

	if req.Car == nil || req.User == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotReady)
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("rentable_id", req.Car.ID.String()),
	)

	draft, ok := s.drafts.Peek(req.SessionID, req.Car.ID)
	if !ok || !draft.Progress.Ready() {
		return nil, fmt.Errorf("%s: %w", op, ErrNotReady)
	}

	in, err := buildInput(req.Car, draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	amount := MinorUnits(in.TotalPrice)
	key := s.attemptKey(ctx, log, req.SessionID, req.Car.ID, amount)

	order, err := s.gateway.GeneratePaymentOrder(ctx, req.Token, key, in.TotalPrice, in)
	if err != nil {
		return nil, &Failure{Kind: FailureOrder, Message: "generate payment order", Err: err}
	}

	if order.Status != OrderStatusSuccess {
		s.finish(ctx, log, key, AttemptFailed)
		return nil, &Failure{Kind: rejectionKind(order.Status, FailureOrder), Message: order.Message}
	}

	if order.Amount != 0 && order.Amount != amount {
		log.Error("order amount differs from booking total",
			slog.Int64("order_amount", order.Amount),
			slog.Int64("amount", amount),
		)
		s.finish(ctx, log, key, AttemptFailed)
		return nil, &Failure{Kind: FailureOrder, Message: "order amount does not match booking total"}
	}

	if err := s.ledger.AttachOrder(ctx, key, order.OrderID); err != nil {
		log.Error("failed to attach order to attempt", sl.Err(err))
	}

	if err := s.widget.Load(ctx); err != nil {
		return nil, &Failure{Kind: FailureWidget, Message: "load payment widget", Err: err}
	}

	err = s.drafts.Freeze(req.SessionID, req.Car.ID, PendingPayment{
		OrderID:     order.OrderID,
		AmountMinor: amount,
		Input:       in,
		Billing:     draft.Billing,
	})
	if err != nil {
		s.finish(ctx, log, key, AttemptFailed)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	currency := order.Currency
	if currency == "" {
		currency = s.settings.Currency
	}

	log.Info("payment order created", slog.String("order_id", order.OrderID), slog.Int64("amount", amount))

	return &WidgetOptions{
		Key:         s.settings.KeyID,
		Amount:      amount,
		Currency:    currency,
		OrderID:     order.OrderID,
		Name:        s.settings.Merchant,
		Description: s.settings.Description,
		Prefill: WidgetPrefill{
			Name:    draft.Billing.FullName(),
			Email:   req.User.Email,
			Contact: draft.Billing.PhoneNumber,
		},
		Theme:          WidgetTheme{Color: s.settings.ThemeColor},
		IdempotencyKey: key,
	}, nil
}

// Verify runs the second phase: it exchanges the payment proof for the
// booking frozen by Submit. On success the draft is discarded and the
// confirmation side effect fires. A rejected payment unlocks the draft.
func (s *Sequencer) Verify(ctx context.Context, req VerifyRequest) (*Booked, error) {
	const op = "checkout.Sequencer.Verify"

	if req.Car == nil || req.User == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotReady)
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("rentable_id", req.Car.ID.String()),
		slog.String("order_id", req.Proof.OrderID),
	)

	draft, ok := s.drafts.Peek(req.SessionID, req.Car.ID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrDraftNotFound)
	}

	pending, ok := draft.Pending()
	if !ok {
		return nil, fmt.Errorf("%s: no payment order: %w", op, ErrNotReady)
	}

	if pending.OrderID != req.Proof.OrderID {
		log.Warn("payment proof is for another order", slog.String("pending_order_id", pending.OrderID))
		return nil, fmt.Errorf("%s: %w", op, ErrOrderMismatch)
	}

	if MinorUnits(pending.Input.TotalPrice) != pending.AmountMinor {
		return nil, fmt.Errorf("%s: amount %d: %w", op, pending.AmountMinor, ErrOrderMismatch)
	}

	key, err := s.ledger.KeyForOrder(ctx, req.Proof.OrderID)
	if err != nil {
		log.Warn("no attempt recorded for order", sl.Err(err))
	}

	res, err := s.gateway.VerifyPaymentAndCreateBooking(ctx, req.Token, key, req.Proof, pending.Input)
	if err != nil {
		return nil, &Failure{Kind: FailureVerification, Message: "verify payment", Err: err}
	}

	if res.Status != OrderStatusSuccess || res.Booking == nil {
		s.finish(ctx, log, key, AttemptFailed)
		s.drafts.Release(req.SessionID, req.Car.ID, pending.OrderID)
		return nil, &Failure{Kind: rejectionKind(res.Status, FailureVerification), Message: res.Message}
	}

	s.finish(ctx, log, key, AttemptVerified)
	s.drafts.Discard(req.SessionID, req.Car.ID)
	s.notifier.BookingConfirmed(ctx, *res.Booking, *req.User, pending.Billing)

	log.Info("booking created", slog.String("booking_id", res.Booking.ID.String()))

	return &Booked{
		Booking:  res.Booking,
		Redirect: DashboardPath,
	}, nil
}

// attemptKey reuses the key of a pending attempt for the same cart so a
// manual retry is recognisable upstream, and records a new attempt otherwise.
// Ledger errors are logged and never block checkout.
func (s *Sequencer) attemptKey(ctx context.Context, log *slog.Logger, sessionID string, rentableID models.ID, amount int64) string {
	key, err := s.ledger.PendingKey(ctx, sessionID, rentableID.String(), amount)
	switch {
	case err == nil:
		log.Info("reusing pending checkout attempt", slog.String("idempotency_key", key))
		return key
	case !errors.Is(err, ErrAttemptNotFound):
		log.Error("failed to look up pending attempt", sl.Err(err))
	}

	key = uuid.NewString()

	err = s.ledger.Begin(ctx, Attempt{
		Key:         key,
		SessionID:   sessionID,
		RentableID:  rentableID.String(),
		AmountMinor: amount,
		Currency:    s.settings.Currency,
		Status:      AttemptPending,
	})
	if err != nil {
		log.Error("failed to record checkout attempt", sl.Err(err))
	}

	return key
}

func (s *Sequencer) finish(ctx context.Context, log *slog.Logger, key string, status AttemptStatus) {
	if key == "" {
		return
	}

	if err := s.ledger.Finish(ctx, key, status); err != nil {
		log.Error("failed to finish checkout attempt", sl.Err(err), slog.String("status", string(status)))
	}
}

func rejectionKind(status string, fallback FailureKind) FailureKind {
	switch status {
	case OrderStatusUnavailable, OrderStatusConflict:
		return FailureUnavailable
	default:
		return fallback
	}
}

func buildInput(car *models.RentableCar, draft Draft) (BookingInput, error) {
	rentableID, err := car.ID.Int()
	if err != nil {
		return BookingInput{}, fmt.Errorf("%w: rentable %q", ErrInvalidListing, car.ID)
	}

	carID, err := car.Car.ID.Int()
	if err != nil {
		return BookingInput{}, fmt.Errorf("%w: car %q", ErrInvalidListing, car.Car.ID)
	}

	pickUp, dropOff, err := draft.Rental.Range()
	if err != nil {
		return BookingInput{}, err
	}

	total := TotalPrice(car.PricePerDay, RentalDays(pickUp, dropOff))

	return BookingInput{
		RentableID:      rentableID,
		CarID:           carID,
		PickUpDate:      pickUp.UTC().Format(time.RFC3339),
		PickUpTime:      draft.Rental.PickUpTime,
		DropOffDate:     dropOff.UTC().Format(time.RFC3339),
		DropOffTime:     draft.Rental.DropOffTime,
		PickUpLocation:  draft.Rental.PickUpLocation,
		DropOffLocation: draft.Rental.DropOffLocation,
		TotalPrice:      total,
		UserInfo:        draft.Billing.FullName(),
		PhoneNumber:     draft.Billing.PhoneNumber,
		Address:         draft.Billing.Address,
	}, nil
}
