package getCheckout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/checkout"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"
	"carRental/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Summary struct {
	PricePerDay float64 `json:"pricePerDay"`
	Days        int     `json:"days"`
	Total       float64 `json:"total"`
}

type CheckoutResponse struct {
	response.Response
	Car      *models.RentableCar `json:"car"`
	Draft    checkout.Draft      `json:"draft"`
	Progress checkout.Progress   `json:"progress"`
	Ready    bool                `json:"ready"`
	Summary  Summary             `json:"summary"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarGetter
type CarGetter interface {
	RentableCar(ctx context.Context, id models.ID) (*models.RentableCar, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileProvider
type ProfileProvider interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftGetter
type DraftGetter interface {
	Get(sessionID string, rentableID models.ID, prefill *models.User) checkout.Draft
}

func New(log *slog.Logger, cars CarGetter, profiles ProfileProvider, drafts DraftGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.getCheckout.New"

		log := log.With(slog.String("op", op))

		sess, ok := session.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("car id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("car id is required"))
			return
		}

		log = log.With(slog.String("rentable_id", id))

		car, err := cars.RentableCar(r.Context(), models.ID(id))
		if err != nil {
			log.Error("failed to get car", sl.Err(err))

			if errors.Is(err, rentalapi.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("car not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get car"))
			return
		}

		user, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Warn("billing prefill skipped", sl.Err(err))
			user = nil
		}

		draft := drafts.Get(sess.ID, car.ID, user)
		days := draft.Rental.Days()

		render.JSON(w, r, CheckoutResponse{
			Response: response.OK(),
			Car:      car,
			Draft:    draft,
			Progress: draft.Progress,
			Ready:    draft.Progress.Ready(),
			Summary: Summary{
				PricePerDay: car.PricePerDay,
				Days:        days,
				Total:       checkout.TotalPrice(car.PricePerDay, days),
			},
		})
	}
}
