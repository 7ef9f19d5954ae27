package updateProfile

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
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Pincode   string `json:"pincode"`
}

type ProfileResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, token string, userID models.ID, in rentalapi.ProfileUpdate) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileCache
type ProfileCache interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
	Put(sessionID string, u models.User)
}

func New(log *slog.Logger, updater ProfileUpdater, profiles ProfileCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.updateProfile.New"

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

		current, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load profile"))
			return
		}

		user, err := updater.UpdateProfile(r.Context(), sess.Token, current.ID, rentalapi.ProfileUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			City:      req.City,
			State:     req.State,
			Country:   req.Country,
			Pincode:   req.Pincode,
		})
		if err != nil {
			log.Error("failed to update profile", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to update profile"))
			return
		}

		profiles.Put(sess.ID, *user)

		log.Info("profile updated", slog.String("user_id", user.ID.String()))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
