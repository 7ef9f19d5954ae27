package listCars

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"carRental/internal/availability"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/search"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type ListResponse struct {
	response.Response
	Cars []models.RentableCar `json:"cars"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarLister
type CarLister interface {
	RentableCars(ctx context.Context) ([]models.RentableCar, error)
	AvailableCars(ctx context.Context, l search.Listing) ([]models.RentableCar, error)
	Bookings(ctx context.Context, token string) ([]models.Booking, error)
}

func New(log *slog.Logger, cars CarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cars.listCars.New"

		log := log.With(slog.String("op", op))

		listing, err := search.ComposeListing(r.URL.Query())
		if err != nil {
			log.Error("invalid listing query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid listing query"))
			return
		}

		if !listing.UseAvailableQuery() {
			list, err := cars.RentableCars(r.Context())
			if err != nil {
				log.Error("failed to fetch rentable cars", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to fetch cars"))
				return
			}

			responseOK(w, r, list)
			return
		}

		list, err := cars.AvailableCars(r.Context(), listing)
		if err != nil {
			log.Error("failed to fetch available cars", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch cars"))
			return
		}

		if listing.HasDateRange() {
			pickUp, _ := time.Parse(dateLayout, listing.PickUpDate)
			dropOff, _ := time.Parse(dateLayout, listing.DropOffDate)

			var token string
			if sess, ok := session.FromContext(r.Context()); ok {
				token = sess.Token
			}

			bookings, err := cars.Bookings(r.Context(), token)
			if err != nil {
				log.Error("failed to fetch bookings", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to fetch bookings"))
				return
			}

			before := len(list)
			list = availability.FilterAvailable(list, bookings, pickUp, dropOff)

			log.Debug("availability filter applied",
				slog.Int("listed", before),
				slog.Int("available", len(list)),
			)
		}

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, cars []models.RentableCar) {
	if cars == nil {
		cars = []models.RentableCar{}
	}

	render.JSON(w, r, ListResponse{
		Response: response.OK(),
		Cars:     cars,
	})
}
