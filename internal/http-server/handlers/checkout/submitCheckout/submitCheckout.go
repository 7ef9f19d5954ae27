package submitCheckout

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

type SubmitResponse struct {
	response.Response
	Widget *checkout.WidgetOptions `json:"widget"`
}

type FailureResponse struct {
	response.Response
	Title string `json:"title"`
	Text  string `json:"text"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CarGetter
type CarGetter interface {
	RentableCar(ctx context.Context, id models.ID) (*models.RentableCar, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileProvider
type ProfileProvider interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Submitter
type Submitter interface {
	Submit(ctx context.Context, req checkout.SubmitRequest) (*checkout.WidgetOptions, error)
}

// New starts payment for a ready draft and returns the options the payment
// widget has to be opened with.
func New(log *slog.Logger, cars CarGetter, profiles ProfileProvider, submitter Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.submitCheckout.New"

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

		// A missing profile leaves the user nil and the submit is refused.
		user, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			user = nil
		}

		opts, err := submitter.Submit(r.Context(), checkout.SubmitRequest{
			SessionID: sess.ID,
			Token:     sess.Token,
			Car:       car,
			User:      user,
		})
		if err != nil {
			log.Error("checkout submit failed", sl.Err(err))

			var failure *checkout.Failure

			switch {
			case errors.As(err, &failure):
				render.Status(r, failureStatus(failure.Kind))
				render.JSON(w, r, FailureResponse{
					Response: response.Error(failure.Message),
					Title:    failure.Title(),
					Text:     failure.Text(),
				})
			case errors.Is(err, checkout.ErrNotReady):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout is not ready"))
			case errors.Is(err, checkout.ErrInvalidListing):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error("listing cannot be booked"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit checkout"))
			}
			return
		}

		render.JSON(w, r, SubmitResponse{
			Response: response.OK(),
			Widget:   opts,
		})
	}
}

func failureStatus(kind checkout.FailureKind) int {
	switch kind {
	case checkout.FailureWidget:
		return http.StatusServiceUnavailable
	case checkout.FailureUnavailable:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
