package updatePassword

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
	"github.com/go-playground/validator/v10"
)

type Request struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordUpdater
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, token string, userID models.ID, in rentalapi.PasswordUpdate) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileProvider
type ProfileProvider interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
}

func New(log *slog.Logger, updater PasswordUpdater, profiles ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.updatePassword.New"

		log := log.With(slog.String("op", op))

		sess, ok := session.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

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

		user, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load profile"))
			return
		}

		err = updater.UpdatePassword(r.Context(), sess.Token, user.ID, rentalapi.PasswordUpdate{
			CurrentPassword: req.CurrentPassword,
			NewPassword:     req.NewPassword,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			log.Error("failed to update password", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to update password"))
			return
		}

		log.Info("password updated", slog.String("user_id", user.ID.String()))

		render.JSON(w, r, response.OK())
	}
}
