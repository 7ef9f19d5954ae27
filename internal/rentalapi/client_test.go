package rentalapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carRental/internal/checkout"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type recorded struct {
	req    gqlRequest
	header http.Header
}

// fakeAPI answers every request with body and records what it received.
func fakeAPI(t *testing.T, body string) (*Client, *recorded) {
	t.Helper()

	rec := &recorded{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.header = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec.req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second), rec
}

func TestRentableCars(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"getRentableCars":[
		{"id":"1","carId":7,"pricePerDay":80,"availableQuantity":3,"car":{"id":"7","name":"Swift","numberOfSeats":5}}
	]}}`)

	cars, err := c.RentableCars(context.Background())
	require.NoError(t, err)

	require.Len(t, cars, 1)
	assert.Equal(t, models.ID("1"), cars[0].ID)
	assert.Equal(t, models.ID("7"), cars[0].CarID)
	assert.Equal(t, "Swift", cars[0].Car.Name)
	assert.Contains(t, rec.req.Query, "getRentableCars")
	assert.Empty(t, rec.header.Get("Authorization"))
}

func TestRentableCarNotFound(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"getRentableCarsWithId":null}}`)

	_, err := c.RentableCar(context.Background(), "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "42", rec.req.Variables["id"])
}

func TestAvailableCars(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"getAvailableCars":{"status":"success","message":"ok","data":[
		{"id":"1","carId":"7","pricePerDay":80,"car":{"id":"7"}}
	]}}}`)

	maxPrice := 150.0

	cars, err := c.AvailableCars(context.Background(), search.Listing{
		Filter: search.Filter{
			SearchQuery:   "swift",
			NumberOfSeats: []int{4},
			MaxPrice:      &maxPrice,
		},
		PickUpDate: "2022-07-21",
	})
	require.NoError(t, err)
	require.Len(t, cars, 1)

	vars := rec.req.Variables
	assert.Equal(t, "2022-07-21", vars["pickUpDate"])
	assert.Equal(t, "", vars["dropOffDate"])
	assert.Equal(t, "swift", vars["query"])
	assert.Equal(t, []any{}, vars["fuelType"])
	assert.Equal(t, []any{float64(4)}, vars["numberOfSeats"])
	assert.Equal(t, 150.0, vars["maxPrice"])
}

func TestEnvelopeRejection(t *testing.T) {
	t.Parallel()

	c, _ := fakeAPI(t, `{"data":{"fetchBookings":{"status":"error","message":"Unauthorized","data":null}}}`)

	_, err := c.Bookings(context.Background(), "tok")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrRejected))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "fetchBookings", statusErr.Operation)
	assert.Equal(t, "Unauthorized", statusErr.Message)
}

func TestGraphQLError(t *testing.T) {
	t.Parallel()

	c, _ := fakeAPI(t, `{"data":null,"errors":[{"message":"boom"}]}`)

	_, err := c.FetchUser(context.Background(), "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRejected))
	assert.Contains(t, err.Error(), "boom")
}

func TestBookingsSendsToken(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"fetchBookings":{"status":"success","message":"","data":[
		{"id":"b1","carId":7,"pickUpDate":"2022-07-20T00:00:00.000Z","dropOffDate":"1658361600000","totalPrice":160,"status":"success"}
	]}}}`)

	bookings, err := c.Bookings(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	assert.Equal(t, models.ID("7"), bookings[0].CarID)
	assert.True(t, bookings[0].PickUpDate.Equal(time.Date(2022, time.July, 20, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bookings[0].DropOffDate.Equal(time.Date(2022, time.July, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Bearer tok", rec.header.Get("Authorization"))
}

func TestGeneratePaymentOrder(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"generatePaymentOrder":{
		"status":"success","message":"created","razorpayOrderId":"order_1","amount":16000,"currency":"INR"
	}}}`)

	in := checkout.BookingInput{RentableID: 1, CarID: 7, TotalPrice: 160}

	order, err := c.GeneratePaymentOrder(context.Background(), "tok", "key-1", 160, in)
	require.NoError(t, err)

	assert.Equal(t, &checkout.PaymentOrder{
		Status:   "success",
		Message:  "created",
		OrderID:  "order_1",
		Amount:   16000,
		Currency: "INR",
	}, order)

	assert.Equal(t, "key-1", rec.header.Get("Idempotency-Key"))
	assert.Equal(t, 160.0, rec.req.Variables["totalPrice"])

	bookingInput, ok := rec.req.Variables["bookingInput"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), bookingInput["rentableId"])
	assert.Equal(t, float64(7), bookingInput["carId"])
}

func TestGeneratePaymentOrderRejectedIsNotAnError(t *testing.T) {
	t.Parallel()

	c, _ := fakeAPI(t, `{"data":{"generatePaymentOrder":{"status":"unavailable","message":"Car is booked"}}}`)

	order, err := c.GeneratePaymentOrder(context.Background(), "tok", "key-1", 160, checkout.BookingInput{})
	require.NoError(t, err)
	assert.Equal(t, "unavailable", order.Status)
	assert.Equal(t, "Car is booked", order.Message)
}

func TestVerifyPaymentAndCreateBooking(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"verifyPaymentAndCreateBooking":{"status":"success","message":"booked","data":{
		"id":"b9","carId":7,"userId":"u1","pickUpDate":"2022-07-21","dropOffDate":"2022-07-22","totalPrice":160,"status":"success"
	}}}}`)

	res, err := c.VerifyPaymentAndCreateBooking(context.Background(), "tok", "key-1", checkout.PaymentProof{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: "sig",
	}, checkout.BookingInput{RentableID: 1})
	require.NoError(t, err)

	assert.Equal(t, "success", res.Status)
	require.NotNil(t, res.Booking)
	assert.Equal(t, models.ID("b9"), res.Booking.ID)

	details, ok := rec.req.Variables["paymentDetails"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"razorpayPaymentId": "pay_1",
		"razorpayOrderId":   "order_1",
		"razorpaySignature": "sig",
	}, details)
	assert.Equal(t, "key-1", rec.header.Get("Idempotency-Key"))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"userLogin":{"status":"success","message":"Welcome","token":"jwt","data":{"id":"u1","firstName":"Ada","email":"ada@example.com"}}}}`)

	auth, err := c.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "jwt", auth.Token)
	assert.Equal(t, "Ada", auth.User.FirstName)
	assert.Equal(t, "ada@example.com", rec.req.Variables["email"])
	assert.Equal(t, "secret", rec.req.Variables["password"])
}

func TestSendOTPRejected(t *testing.T) {
	t.Parallel()

	c, _ := fakeAPI(t, `{"data":{"sendOTP":{"status":"error","message":"Invalid phone number"}}}`)

	_, err := c.SendOTP(context.Background(), "123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()

	c, rec := fakeAPI(t, `{"data":{"updatePassword":{"status":"success","message":"Password updated"}}}`)

	err := c.UpdatePassword(context.Background(), "tok", "u1", PasswordUpdate{
		CurrentPassword: "old",
		NewPassword:     "new",
		ConfirmPassword: "new",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", rec.req.Variables["userId"])
	input, ok := rec.req.Variables["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new", input["confirmPassword"])
}

func TestUpdateProfileImage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var ops gqlRequest
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("operations")), &ops))
		assert.Contains(t, ops.Query, "updateProfileImage")
		assert.Equal(t, "u1", ops.Variables["userId"])
		assert.JSONEq(t, `{"0":["variables.profileImage"]}`, r.FormValue("map"))

		f, hdr, err := r.FormFile("0")
		require.NoError(t, err)
		defer f.Close()

		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", hdr.Filename)
		assert.Equal(t, "png-bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"updateProfileImage":{"status":"success","message":"ok","data":{"profileImage":"https://cdn/avatar.png"}}}}`)
	}))
	t.Cleanup(srv.Close)

	c := New(slogdiscard.NewDiscardLogger(), srv.URL, time.Second)

	url, err := c.UpdateProfileImage(context.Background(), "tok", "u1", "avatar.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatar.png", url)
}
