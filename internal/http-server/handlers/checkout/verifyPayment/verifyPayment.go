package verifyPayment

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
	"github.com/go-playground/validator/v10"
)

type VerifyResponse struct {
	response.Response
	Booking  *models.Booking `json:"booking"`
	Redirect string          `json:"redirect"`
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Verifier
type Verifier interface {
	Verify(ctx context.Context, req checkout.VerifyRequest) (*checkout.Booked, error)
}

// New exchanges the payment widget's proof for a booking.
func New(log *slog.Logger, cars CarGetter, profiles ProfileProvider, verifier Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.verifyPayment.New"

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

		var proof checkout.PaymentProof

		if err := render.DecodeJSON(r.Body, &proof); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(proof); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

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
			log.Error("failed to load profile", sl.Err(err))
			user = nil
		}

		booked, err := verifier.Verify(r.Context(), checkout.VerifyRequest{
			SessionID: sess.ID,
			Token:     sess.Token,
			Car:       car,
			User:      user,
			Proof:     proof,
		})
		if err != nil {
			log.Error("payment verification failed", sl.Err(err))

			var failure *checkout.Failure

			switch {
			case errors.As(err, &failure):
				status := http.StatusBadGateway
				if failure.Kind == checkout.FailureUnavailable {
					status = http.StatusConflict
				}
				render.Status(r, status)
				render.JSON(w, r, FailureResponse{
					Response: response.Error(failure.Message),
					Title:    failure.Title(),
					Text:     failure.Text(),
				})
			case errors.Is(err, checkout.ErrDraftNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("checkout draft not found"))
			case errors.Is(err, checkout.ErrNotReady):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout is not ready"))
			case errors.Is(err, checkout.ErrOrderMismatch):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("payment does not match the pending order"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to verify payment"))
			}
			return
		}

		log.Info("payment verified", slog.String("order_id", proof.OrderID))

		render.JSON(w, r, VerifyResponse{
			Response: response.OK(),
			Booking:  booked.Booking,
			Redirect: booked.Redirect,
		})
	}
}
