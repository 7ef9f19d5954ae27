package listCars

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carRental/internal/http-server/handlers/cars/listCars/mocks"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/models"
	"carRental/internal/search"
	"carRental/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func car(id, carID string, price float64) models.RentableCar {
	return models.RentableCar{
		ID:          models.ID(id),
		CarID:       models.ID(carID),
		PricePerDay: price,
		Car:         models.Car{ID: models.ID(carID), Name: "Car " + carID},
	}
}

func day(d int) models.Timestamp {
	return models.Timestamp{Time: time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC)}
}

func TestListCarsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		sess           *session.Session
		mockSetup      func(m *mocks.CarLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Plain catalogue",
			query: "",
			mockSetup: func(m *mocks.CarLister) {
				m.On("RentableCars", mock.Anything).Return([]models.RentableCar{car("1", "10", 50)}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"pricePerDay":50`)
			},
		},
		{
			name:  "Empty catalogue renders empty list",
			query: "",
			mockSetup: func(m *mocks.CarLister) {
				m.On("RentableCars", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","cars":[]}`,
		},
		{
			name:  "Filters use available query",
			query: "?transmissionType=Manual&transmissionType=Manual&numberOfSeats=4",
			mockSetup: func(m *mocks.CarLister) {
				m.On("AvailableCars", mock.Anything, mock.MatchedBy(func(l search.Listing) bool {
					return len(l.TransmissionType) == 1 && l.TransmissionType[0] == "Manual" &&
						len(l.NumberOfSeats) == 1 && l.NumberOfSeats[0] == 4
				})).Return([]models.RentableCar{car("2", "20", 30)}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":"2"`)
			},
		},
		{
			name:  "Date range drops booked cars",
			query: "?pickUpDate=2024-05-10&dropOffDate=2024-05-12",
			sess:  &session.Session{ID: "s1", Token: "tok"},
			mockSetup: func(m *mocks.CarLister) {
				m.On("AvailableCars", mock.Anything, mock.Anything).
					Return([]models.RentableCar{car("1", "10", 50), car("2", "20", 30)}, nil)
				m.On("Bookings", mock.Anything, "tok").Return([]models.Booking{
					{ID: "b1", CarID: "10", PickUpDate: day(11), DropOffDate: day(14)},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, `"id":"1"`)
				assert.Contains(t, body, `"id":"2"`)
			},
		},
		{
			name:  "Turnover on drop-off day is free",
			query: "?pickUpDate=2024-05-14&dropOffDate=2024-05-16",
			mockSetup: func(m *mocks.CarLister) {
				m.On("AvailableCars", mock.Anything, mock.Anything).
					Return([]models.RentableCar{car("1", "10", 50)}, nil)
				m.On("Bookings", mock.Anything, "").Return([]models.Booking{
					{ID: "b1", CarID: "10", PickUpDate: day(11), DropOffDate: day(14)},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":"1"`)
			},
		},
		{
			name:           "Reversed date range",
			query:          "?pickUpDate=2024-05-12&dropOffDate=2024-05-10",
			mockSetup:      func(m *mocks.CarLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid listing query"}`,
		},
		{
			name:           "Invalid sort",
			query:          "?priceSort=sideways",
			mockSetup:      func(m *mocks.CarLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid listing query"}`,
		},
		{
			name:  "Catalogue error",
			query: "",
			mockSetup: func(m *mocks.CarLister) {
				m.On("RentableCars", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to fetch cars"}`,
		},
		{
			name:  "Bookings error",
			query: "?pickUpDate=2024-05-10&dropOffDate=2024-05-12",
			mockSetup: func(m *mocks.CarLister) {
				m.On("AvailableCars", mock.Anything, mock.Anything).Return([]models.RentableCar{car("1", "10", 50)}, nil)
				m.On("Bookings", mock.Anything, "").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to fetch bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewCarLister(t)
			tc.mockSetup(lister)

			router := chi.NewRouter()
			router.Get("/cars", New(logger, lister))

			req, err := http.NewRequest(http.MethodGet, "/cars"+tc.query, nil)
			require.NoError(t, err)

			if tc.sess != nil {
				req = req.WithContext(session.NewContext(req.Context(), *tc.sess))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
