package rentalapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"carRental/internal/checkout"
	"carRental/internal/models"
	"carRental/internal/search"

	"github.com/machinebox/graphql"
)

// Client talks to the remote GraphQL API that owns inventory, bookings,
// payments and accounts.
type Client struct {
	log      *slog.Logger
	gql      *graphql.Client
	http     *http.Client
	endpoint string
}

func New(log *slog.Logger, endpoint string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}

	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		log.Debug(s, slog.String("component", "graphql"))
	}

	return &Client{
		log:      log,
		gql:      gql,
		http:     httpClient,
		endpoint: endpoint,
	}
}

type call struct {
	query          string
	token          string
	idempotencyKey string
	vars           map[string]any
}

func (c *Client) run(ctx context.Context, cl call, resp any) error {
	req := graphql.NewRequest(cl.query)
	for k, v := range cl.vars {
		req.Var(k, v)
	}

	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	if cl.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", cl.idempotencyKey)
	}

	return c.gql.Run(ctx, req, resp)
}

func (c *Client) RentableCars(ctx context.Context) ([]models.RentableCar, error) {
	const op = "rentalapi.RentableCars"

	var resp struct {
		GetRentableCars []models.RentableCar `json:"getRentableCars"`
	}

	if err := c.run(ctx, call{query: qRentableCars}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.GetRentableCars, nil
}

func (c *Client) RentableCar(ctx context.Context, id models.ID) (*models.RentableCar, error) {
	const op = "rentalapi.RentableCar"

	var resp struct {
		GetRentableCarsWithID *models.RentableCar `json:"getRentableCarsWithId"`
	}

	err := c.run(ctx, call{
		query: qRentableCar,
		vars:  map[string]any{"id": id.String()},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.GetRentableCarsWithID == nil {
		return nil, fmt.Errorf("%s: rentable %s: %w", op, id, ErrNotFound)
	}

	return resp.GetRentableCarsWithID, nil
}

// AvailableCars runs the filtered listing query. Unset dates are sent as
// empty strings since the query declares them non-null.
func (c *Client) AvailableCars(ctx context.Context, l search.Listing) ([]models.RentableCar, error) {
	const op = "rentalapi.AvailableCars"

	vars := map[string]any{
		"pickUpDate":       l.PickUpDate,
		"dropOffDate":      l.DropOffDate,
		"query":            l.SearchQuery,
		"transmissionType": nonNil(l.TransmissionType),
		"fuelType":         nonNil(l.FuelType),
		"numberOfSeats":    nonNil(l.NumberOfSeats),
		"priceSort":        l.PriceSort,
	}
	if l.MaxPrice != nil {
		vars["maxPrice"] = *l.MaxPrice
	}

	var resp struct {
		GetAvailableCars envelope[[]models.RentableCar] `json:"getAvailableCars"`
	}

	if err := c.run(ctx, call{query: qAvailableCars, vars: vars}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.GetAvailableCars.check("getAvailableCars"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.GetAvailableCars.Data, nil
}

// Bookings returns the bookings visible to the token, which is every booking
// for conflict checking and the user's own for the dashboard.
func (c *Client) Bookings(ctx context.Context, token string) ([]models.Booking, error) {
	const op = "rentalapi.Bookings"

	var resp struct {
		FetchBookings envelope[[]models.Booking] `json:"fetchBookings"`
	}

	if err := c.run(ctx, call{query: qFetchBookings, token: token}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.FetchBookings.check("fetchBookings"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.FetchBookings.Data, nil
}

// GeneratePaymentOrder asks the API to open a payment order. A rejection is
// reported through the returned order status, not as an error.
func (c *Client) GeneratePaymentOrder(
	ctx context.Context,
	token, idempotencyKey string,
	totalPrice float64,
	in checkout.BookingInput,
) (*checkout.PaymentOrder, error) {
	const op = "rentalapi.GeneratePaymentOrder"

	var resp struct {
		GeneratePaymentOrder struct {
			Status          string `json:"status"`
			Message         string `json:"message"`
			RazorpayOrderID string `json:"razorpayOrderId"`
			Amount          int64  `json:"amount"`
			Currency        string `json:"currency"`
		} `json:"generatePaymentOrder"`
	}

	err := c.run(ctx, call{
		query:          mGeneratePaymentOrder,
		token:          token,
		idempotencyKey: idempotencyKey,
		vars: map[string]any{
			"totalPrice":   totalPrice,
			"bookingInput": in,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := resp.GeneratePaymentOrder

	return &checkout.PaymentOrder{
		Status:   out.Status,
		Message:  out.Message,
		OrderID:  out.RazorpayOrderID,
		Amount:   out.Amount,
		Currency: out.Currency,
	}, nil
}

func (c *Client) VerifyPaymentAndCreateBooking(
	ctx context.Context,
	token, idempotencyKey string,
	proof checkout.PaymentProof,
	in checkout.BookingInput,
) (*checkout.Verification, error) {
	const op = "rentalapi.VerifyPaymentAndCreateBooking"

	var resp struct {
		VerifyPaymentAndCreateBooking envelope[*models.Booking] `json:"verifyPaymentAndCreateBooking"`
	}

	err := c.run(ctx, call{
		query:          mVerifyPayment,
		token:          token,
		idempotencyKey: idempotencyKey,
		vars: map[string]any{
			"paymentDetails": proof,
			"bookingInput": in,
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := resp.VerifyPaymentAndCreateBooking

	return &checkout.Verification{
		Status:  out.Status,
		Message: out.Message,
		Booking: out.Data,
	}, nil
}

func (c *Client) FetchUser(ctx context.Context, token string) (*models.User, error) {
	const op = "rentalapi.FetchUser"

	var resp struct {
		FetchUser envelope[*models.User] `json:"fetchUser"`
	}

	if err := c.run(ctx, call{query: qFetchUser, token: token}, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.FetchUser.check("fetchUser"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.FetchUser.Data == nil {
		return nil, fmt.Errorf("%s: user: %w", op, ErrNotFound)
	}

	return resp.FetchUser.Data, nil
}

func (c *Client) RegisterUser(ctx context.Context, in Registration) (*models.User, error) {
	const op = "rentalapi.RegisterUser"

	var resp struct {
		RegisterUser envelope[*models.User] `json:"registerUser"`
	}

	err := c.run(ctx, call{query: mRegisterUser, vars: map[string]any{"input": in}}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.RegisterUser.check("registerUser"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.RegisterUser.Data, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Auth, error) {
	const op = "rentalapi.Login"

	var resp struct {
		UserLogin envelope[*models.User] `json:"userLogin"`
	}

	err := c.run(ctx, call{
		query: mLogin,
		vars:  map[string]any{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.UserLogin.check("userLogin"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Auth{
		Token:   resp.UserLogin.Token,
		Message: resp.UserLogin.Message,
		User:    resp.UserLogin.Data,
	}, nil
}

func (c *Client) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	const op = "rentalapi.SendOTP"

	var resp struct {
		SendOTP envelope[struct{}] `json:"sendOTP"`
	}

	err := c.run(ctx, call{
		query: mSendOTP,
		vars:  map[string]any{"phoneNumber": phoneNumber},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.SendOTP.check("sendOTP"); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return resp.SendOTP.Message, nil
}

func (c *Client) VerifyOTP(ctx context.Context, phoneNumber, otp string) (*Auth, error) {
	const op = "rentalapi.VerifyOTP"

	var resp struct {
		VerifyOTP envelope[*models.User] `json:"verifyOTP"`
	}

	err := c.run(ctx, call{
		query: mVerifyOTP,
		vars:  map[string]any{"phoneNumber": phoneNumber, "otp": otp},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.VerifyOTP.check("verifyOTP"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Auth{
		Token:   resp.VerifyOTP.Token,
		Message: resp.VerifyOTP.Message,
		User:    resp.VerifyOTP.Data,
	}, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, userID models.ID, in ProfileUpdate) (*models.User, error) {
	const op = "rentalapi.UpdateProfile"

	var resp struct {
		UpdateUserProfile envelope[*models.User] `json:"updateUserProfile"`
	}

	err := c.run(ctx, call{
		query: mUpdateProfile,
		token: token,
		vars:  map[string]any{"userId": userID.String(), "input": in},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.UpdateUserProfile.check("updateUserProfile"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resp.UpdateUserProfile.Data, nil
}

func (c *Client) UpdatePassword(ctx context.Context, token string, userID models.ID, in PasswordUpdate) error {
	const op = "rentalapi.UpdatePassword"

	var resp struct {
		UpdatePassword envelope[struct{}] `json:"updatePassword"`
	}

	err := c.run(ctx, call{
		query: mUpdatePassword,
		token: token,
		vars:  map[string]any{"userId": userID.String(), "input": in},
	}, &resp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := resp.UpdatePassword.check("updatePassword"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
