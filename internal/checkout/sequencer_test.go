package checkout_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"carRental/internal/checkout"
	"carRental/internal/checkout/mocks"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "session-1"

var (
	car = &models.RentableCar{
		ID:          "1",
		CarID:       "7",
		PricePerDay: 80,
		Car:         models.Car{ID: "7", Name: "Swift"},
	}
	user = &models.User{
		ID:          "u1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+911234567890",
	}
	billing = checkout.BillingInfo{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "+919999999999",
		Address:     "1 Main St",
	}
	expectedInput = checkout.BookingInput{
		RentableID:      1,
		CarID:           7,
		PickUpDate:      "2022-07-21T00:00:00Z",
		PickUpTime:      "10:00",
		DropOffDate:     "2022-07-22T00:00:00Z",
		DropOffTime:     "09:30",
		PickUpLocation:  "Kochi",
		DropOffLocation: "Kochi Airport",
		TotalPrice:      160,
		UserInfo:        "Ada Lovelace",
		PhoneNumber:     "+919999999999",
		Address:         "1 Main St",
	}
	proof = checkout.PaymentProof{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}
)

var settings = checkout.WidgetSettings{
	KeyID:       "rzp_test_key",
	Currency:    "INR",
	Merchant:    "Car Rental",
	Description: "Car booking",
	ThemeColor:  "#3563E9",
}

type deps struct {
	drafts   *checkout.Drafts
	gateway  *mocks.PaymentGateway
	widget   *mocks.WidgetLoader
	ledger   *mocks.AttemptLedger
	notifier *mocks.Notifier
}

func newSequencer(t *testing.T) (*checkout.Sequencer, deps) {
	t.Helper()

	d := deps{
		drafts:   checkout.NewDrafts(),
		gateway:  mocks.NewPaymentGateway(t),
		widget:   mocks.NewWidgetLoader(t),
		ledger:   mocks.NewAttemptLedger(t),
		notifier: mocks.NewNotifier(t),
	}

	s := checkout.NewSequencer(slogdiscard.NewDiscardLogger(), d.drafts, d.gateway, d.widget, d.ledger, d.notifier, settings)

	return s, d
}

func fill(t *testing.T, drafts *checkout.Drafts, agreed bool) {
	t.Helper()

	sections := map[checkout.Section]string{
		checkout.SectionBilling: `{"firstName":"Ada","lastName":"Lovelace","phoneNumber":"+919999999999","address":"1 Main St"}`,
		checkout.SectionRental:  `{"pickUpDate":"2022-07-21","pickUpTime":"10:00","dropOffDate":"2022-07-22","dropOffTime":"09:30","pickUpLocation":"Kochi","dropOffLocation":"Kochi Airport"}`,
	}
	for section, data := range sections {
		_, err := drafts.Update(sessionID, car.ID, section, json.RawMessage(data))
		require.NoError(t, err)
	}

	if agreed {
		_, err := drafts.Update(sessionID, car.ID, checkout.SectionConfirmation, json.RawMessage(`{"agreed":true}`))
		require.NoError(t, err)
	}
}

func submitReq() checkout.SubmitRequest {
	return checkout.SubmitRequest{SessionID: sessionID, Token: "tok", Car: car, User: user}
}

func TestSubmitNotReady(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		setup func(t *testing.T, d deps)
		req   checkout.SubmitRequest
	}{
		{
			name:  "No draft",
			setup: func(t *testing.T, d deps) {},
			req:   submitReq(),
		},
		{
			name:  "Confirmation missing",
			setup: func(t *testing.T, d deps) { fill(t, d.drafts, false) },
			req:   submitReq(),
		},
		{
			name:  "User not loaded",
			setup: func(t *testing.T, d deps) { fill(t, d.drafts, true) },
			req:   checkout.SubmitRequest{SessionID: sessionID, Token: "tok", Car: car},
		},
		{
			name:  "Car not loaded",
			setup: func(t *testing.T, d deps) { fill(t, d.drafts, true) },
			req:   checkout.SubmitRequest{SessionID: sessionID, Token: "tok", User: user},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, d := newSequencer(t)
			tc.setup(t, d)

			opts, err := s.Submit(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, checkout.ErrNotReady))
			assert.Nil(t, opts)
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	fill(t, d.drafts, true)

	var key string

	d.ledger.On("PendingKey", mock.Anything, sessionID, "1", int64(16000)).
		Return("", checkout.ErrAttemptNotFound)
	d.ledger.On("Begin", mock.Anything, mock.MatchedBy(func(a checkout.Attempt) bool {
		key = a.Key
		return a.Key != "" &&
			a.SessionID == sessionID &&
			a.RentableID == "1" &&
			a.AmountMinor == 16000 &&
			a.Currency == "INR" &&
			a.Status == checkout.AttemptPending
	})).Return(nil)
	d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", mock.AnythingOfType("string"), 160.0, expectedInput).
		Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_1", Amount: 16000}, nil)
	d.ledger.On("AttachOrder", mock.Anything, mock.AnythingOfType("string"), "order_1").Return(nil)
	d.widget.On("Load", mock.Anything).Return(nil)

	opts, err := s.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	assert.Equal(t, &checkout.WidgetOptions{
		Key:         "rzp_test_key",
		Amount:      16000,
		Currency:    "INR",
		OrderID:     "order_1",
		Name:        "Car Rental",
		Description: "Car booking",
		Prefill: checkout.WidgetPrefill{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Contact: "+919999999999",
		},
		Theme:          checkout.WidgetTheme{Color: "#3563E9"},
		IdempotencyKey: key,
	}, opts)

	d.gateway.AssertCalled(t, "GeneratePaymentOrder", mock.Anything, "tok", key, 160.0, expectedInput)

	draft, ok := d.drafts.Peek(sessionID, car.ID)
	require.True(t, ok)
	pending, ok := draft.Pending()
	require.True(t, ok, "draft is locked while the order is open")
	assert.Equal(t, "order_1", pending.OrderID)
	assert.Equal(t, int64(16000), pending.AmountMinor)
	assert.Equal(t, expectedInput, pending.Input)
	assert.Equal(t, billing, pending.Billing)
}

func TestSubmitReusesPendingAttempt(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	fill(t, d.drafts, true)

	d.ledger.On("PendingKey", mock.Anything, sessionID, "1", int64(16000)).Return("key-1", nil)
	d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
		Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_2", Currency: "USD"}, nil)
	d.ledger.On("AttachOrder", mock.Anything, "key-1", "order_2").Return(nil)
	d.widget.On("Load", mock.Anything).Return(nil)

	opts, err := s.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	assert.Equal(t, "key-1", opts.IdempotencyKey)
	assert.Equal(t, "USD", opts.Currency)
	d.ledger.AssertNotCalled(t, "Begin", mock.Anything, mock.Anything)
}

func TestSubmitLedgerErrorsDoNotBlock(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	fill(t, d.drafts, true)

	dbErr := errors.New("connection refused")

	d.ledger.On("PendingKey", mock.Anything, sessionID, "1", int64(16000)).Return("", dbErr)
	d.ledger.On("Begin", mock.Anything, mock.Anything).Return(dbErr)
	d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", mock.AnythingOfType("string"), 160.0, expectedInput).
		Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_1"}, nil)
	d.ledger.On("AttachOrder", mock.Anything, mock.Anything, "order_1").Return(dbErr)
	d.widget.On("Load", mock.Anything).Return(nil)

	opts, err := s.Submit(context.Background(), submitReq())
	require.NoError(t, err)
	assert.Equal(t, "order_1", opts.OrderID)
}

func TestSubmitFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		setup    func(d deps)
		wantKind checkout.FailureKind
	}{
		{
			name: "Order transport error",
			setup: func(d deps) {
				d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
					Return(nil, errors.New("timeout"))
			},
			wantKind: checkout.FailureOrder,
		},
		{
			name: "Order rejected",
			setup: func(d deps) {
				d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
					Return(&checkout.PaymentOrder{Status: "error", Message: "bad input"}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureOrder,
		},
		{
			name: "Car unavailable",
			setup: func(d deps) {
				d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
					Return(&checkout.PaymentOrder{Status: "unavailable", Message: "Car is booked"}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureUnavailable,
		},
		{
			name: "Widget load failure",
			setup: func(d deps) {
				d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
					Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_1"}, nil)
				d.ledger.On("AttachOrder", mock.Anything, "key-1", "order_1").Return(nil)
				d.widget.On("Load", mock.Anything).Return(errors.New("dns failure")).Once()
			},
			wantKind: checkout.FailureWidget,
		},
		{
			name: "Order amount differs",
			setup: func(d deps) {
				d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
					Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_1", Amount: 9900}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureOrder,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, d := newSequencer(t)
			fill(t, d.drafts, true)

			d.ledger.On("PendingKey", mock.Anything, sessionID, "1", int64(16000)).Return("key-1", nil)
			tc.setup(d)

			opts, err := s.Submit(context.Background(), submitReq())
			require.Error(t, err)
			assert.Nil(t, opts)

			var failure *checkout.Failure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, tc.wantKind, failure.Kind)
			assert.NotEmpty(t, failure.Title())
			assert.NotEmpty(t, failure.Text())

			draft, _ := d.drafts.Peek(sessionID, car.ID)
			_, locked := draft.Pending()
			assert.False(t, locked, "a failed submit leaves the draft editable")
		})
	}
}

func verifyReq() checkout.VerifyRequest {
	return checkout.VerifyRequest{SessionID: sessionID, Token: "tok", Car: car, User: user, Proof: proof}
}

// ordered fills the draft and locks it as a successful Submit would.
func ordered(t *testing.T, drafts *checkout.Drafts) {
	t.Helper()

	fill(t, drafts, true)

	err := drafts.Freeze(sessionID, car.ID, checkout.PendingPayment{
		OrderID:     "order_1",
		AmountMinor: 16000,
		Input:       expectedInput,
		Billing:     billing,
	})
	require.NoError(t, err)
}

func TestVerifySuccess(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	ordered(t, d.drafts)

	booking := &models.Booking{ID: "b1", CarID: "7", Status: models.BookingStatusSuccess, TotalPrice: 160}

	d.ledger.On("KeyForOrder", mock.Anything, "order_1").Return("key-1", nil)
	d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
		Return(&checkout.Verification{Status: "success", Booking: booking}, nil)
	d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptVerified).Return(nil)
	d.notifier.On("BookingConfirmed", mock.Anything, *booking, *user, billing).Return()

	res, err := s.Verify(context.Background(), verifyReq())
	require.NoError(t, err)

	assert.Equal(t, booking, res.Booking)
	assert.Equal(t, checkout.DashboardPath, res.Redirect)

	_, ok := d.drafts.Peek(sessionID, car.ID)
	assert.False(t, ok, "draft is discarded after booking")
}

func TestVerifyWithoutDraft(t *testing.T) {
	t.Parallel()

	s, _ := newSequencer(t)

	_, err := s.Verify(context.Background(), verifyReq())
	require.Error(t, err)
	assert.True(t, errors.Is(err, checkout.ErrDraftNotFound))
}

func TestVerifyFailures(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection reset")

	testCases := []struct {
		name       string
		setup      func(d deps)
		wantKind   checkout.FailureKind
		wantErr    error
		wantLocked bool
	}{
		{
			name: "Transport error",
			setup: func(d deps) {
				d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
					Return(nil, transportErr)
			},
			wantKind:   checkout.FailureVerification,
			wantErr:    transportErr,
			wantLocked: true,
		},
		{
			name: "Signature rejected",
			setup: func(d deps) {
				d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
					Return(&checkout.Verification{Status: "failed", Message: "Invalid signature"}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureVerification,
		},
		{
			name: "Booked meanwhile",
			setup: func(d deps) {
				d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
					Return(&checkout.Verification{Status: "conflict", Message: "Car already booked"}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureUnavailable,
		},
		{
			name: "Success without booking",
			setup: func(d deps) {
				d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
					Return(&checkout.Verification{Status: "success"}, nil)
				d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptFailed).Return(nil)
			},
			wantKind: checkout.FailureVerification,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, d := newSequencer(t)
			ordered(t, d.drafts)

			d.ledger.On("KeyForOrder", mock.Anything, "order_1").Return("key-1", nil)
			tc.setup(d)

			res, err := s.Verify(context.Background(), verifyReq())
			require.Error(t, err)
			assert.Nil(t, res)

			var failure *checkout.Failure
			require.True(t, errors.As(err, &failure))
			assert.Equal(t, tc.wantKind, failure.Kind)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr))
			}

			draft, ok := d.drafts.Peek(sessionID, car.ID)
			assert.True(t, ok, "draft survives a failed attempt")
			_, locked := draft.Pending()
			assert.Equal(t, tc.wantLocked, locked)
			d.notifier.AssertNotCalled(t, "BookingConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestVerifyUnknownOrderStillVerifies(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	ordered(t, d.drafts)

	booking := &models.Booking{ID: "b1"}

	d.ledger.On("KeyForOrder", mock.Anything, "order_1").Return("", checkout.ErrAttemptNotFound)
	d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "", proof, expectedInput).
		Return(&checkout.Verification{Status: "success", Booking: booking}, nil)
	d.notifier.On("BookingConfirmed", mock.Anything, *booking, *user, billing).Return()

	res, err := s.Verify(context.Background(), verifyReq())
	require.NoError(t, err)
	assert.Equal(t, "b1", res.Booking.ID.String())
}

func TestVerifyBooksWhatWasOrdered(t *testing.T) {
	t.Parallel()

	s, d := newSequencer(t)
	fill(t, d.drafts, true)

	d.ledger.On("PendingKey", mock.Anything, sessionID, "1", int64(16000)).Return("key-1", nil)
	d.gateway.On("GeneratePaymentOrder", mock.Anything, "tok", "key-1", 160.0, expectedInput).
		Return(&checkout.PaymentOrder{Status: "success", OrderID: "order_1", Amount: 16000}, nil)
	d.ledger.On("AttachOrder", mock.Anything, "key-1", "order_1").Return(nil)
	d.widget.On("Load", mock.Anything).Return(nil)

	_, err := s.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	edits := map[checkout.Section]string{
		checkout.SectionRental:       `{"pickUpDate":"2022-07-21","pickUpTime":"10:00","dropOffDate":"2022-07-30","dropOffTime":"09:30","pickUpLocation":"Kochi","dropOffLocation":"Kochi Airport"}`,
		checkout.SectionConfirmation: `{"agreed":false}`,
	}
	for section, data := range edits {
		draft, err := d.drafts.Update(sessionID, car.ID, section, json.RawMessage(data))
		require.ErrorIs(t, err, checkout.ErrPaymentPending)
		assert.True(t, draft.Progress.Ready(), "locked draft keeps its state")
	}

	booking := &models.Booking{ID: "b1", TotalPrice: 160}

	d.ledger.On("KeyForOrder", mock.Anything, "order_1").Return("key-1", nil)
	d.gateway.On("VerifyPaymentAndCreateBooking", mock.Anything, "tok", "key-1", proof, expectedInput).
		Return(&checkout.Verification{Status: "success", Booking: booking}, nil)
	d.ledger.On("Finish", mock.Anything, "key-1", checkout.AttemptVerified).Return(nil)
	d.notifier.On("BookingConfirmed", mock.Anything, *booking, *user, billing).Return()

	res, err := s.Verify(context.Background(), verifyReq())
	require.NoError(t, err)
	assert.Equal(t, booking, res.Booking)
}

func TestVerifyAfterStateChange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		setup   func(t *testing.T, d deps)
		proof   checkout.PaymentProof
		wantErr error
	}{
		{
			name:    "No order submitted",
			setup:   func(t *testing.T, d deps) { fill(t, d.drafts, true) },
			proof:   proof,
			wantErr: checkout.ErrNotReady,
		},
		{
			name: "Draft discarded",
			setup: func(t *testing.T, d deps) {
				ordered(t, d.drafts)
				d.drafts.Discard(sessionID, car.ID)
			},
			proof:   proof,
			wantErr: checkout.ErrDraftNotFound,
		},
		{
			name: "Session ended",
			setup: func(t *testing.T, d deps) {
				ordered(t, d.drafts)
				d.drafts.OnSessionEvent(session.Event{Kind: session.EventEnded, Session: session.Session{ID: sessionID}})
			},
			proof:   proof,
			wantErr: checkout.ErrDraftNotFound,
		},
		{
			name:    "Proof for another order",
			setup:   func(t *testing.T, d deps) { ordered(t, d.drafts) },
			proof:   checkout.PaymentProof{PaymentID: "pay_1", OrderID: "order_9", Signature: "sig"},
			wantErr: checkout.ErrOrderMismatch,
		},
		{
			name: "Frozen amount differs from order",
			setup: func(t *testing.T, d deps) {
				fill(t, d.drafts, true)
				err := d.drafts.Freeze(sessionID, car.ID, checkout.PendingPayment{
					OrderID:     "order_1",
					AmountMinor: 9900,
					Input:       expectedInput,
					Billing:     billing,
				})
				require.NoError(t, err)
			},
			proof:   proof,
			wantErr: checkout.ErrOrderMismatch,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, d := newSequencer(t)
			tc.setup(t, d)

			req := verifyReq()
			req.Proof = tc.proof

			res, err := s.Verify(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, res)

			d.gateway.AssertNotCalled(t, "VerifyPaymentAndCreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
