package listBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	Bookings(ctx context.Context, token string) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.listBookings.New"

		log := log.With(slog.String("op", op))

		sess, ok := session.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := bookings.Bookings(r.Context(), sess.Token)
		if err != nil {
			log.Error("failed to fetch bookings", sl.Err(err))

			if errors.Is(err, rentalapi.ErrRejected) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("bookings were not returned"))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to fetch bookings"))
			return
		}

		if list == nil {
			list = []models.Booking{}
		}

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
