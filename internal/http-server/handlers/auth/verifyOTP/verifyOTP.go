package verifyOTP

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/http-server/middleware/mwsession"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"
	"carRental/internal/session"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	OTP         string `json:"otp" validate:"required,numeric"`
}

type VerifyResponse struct {
	response.Response
	Message  string       `json:"message,omitempty"`
	LoggedIn bool         `json:"loggedIn"`
	User     *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OTPVerifier
type OTPVerifier interface {
	VerifyOTP(ctx context.Context, phoneNumber, otp string) (*rentalapi.Auth, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionStarter
type SessionStarter interface {
	Start(token string) (session.Session, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileCache
type ProfileCache interface {
	Put(sessionID string, u models.User)
}

// New checks a one-time password. When the API answers with a token the
// user is signed in; otherwise only the phone number is confirmed.
func New(
	log *slog.Logger,
	verifier OTPVerifier,
	sessions SessionStarter,
	profiles ProfileCache,
	cookie mwsession.Cookie,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.verifyOTP.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		res, err := verifier.VerifyOTP(r.Context(), req.PhoneNumber, req.OTP)
		if err != nil {
			log.Error("otp verification failed", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to verify otp"))
			return
		}

		if res.Token == "" {
			render.JSON(w, r, VerifyResponse{
				Response: response.OK(),
				Message:  res.Message,
				User:     res.User,
			})
			return
		}

		sess, err := sessions.Start(res.Token)
		if err != nil {
			log.Error("failed to start session", sl.Err(err))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("login token was not accepted"))
			return
		}

		if res.User != nil {
			profiles.Put(sess.ID, *res.User)
		}

		cookie.Set(w, sess)

		log.Info("user logged in with otp", slog.String("user_id", sess.UserID))

		render.JSON(w, r, VerifyResponse{
			Response: response.OK(),
			Message:  res.Message,
			LoggedIn: true,
			User:     res.User,
		})
	}
}
