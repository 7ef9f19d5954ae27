package getCar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CarResponse struct {
	response.Response
	Car *models.RentableCar `json:"car"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarGetter
type CarGetter interface {
	RentableCar(ctx context.Context, id models.ID) (*models.RentableCar, error)
}

func New(log *slog.Logger, cars CarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.cars.getCar.New"

		log := log.With(slog.String("op", op))

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

		render.JSON(w, r, CarResponse{
			Response: response.OK(),
			Car:      car,
		})
	}
}
