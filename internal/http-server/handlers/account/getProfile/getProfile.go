package getProfile

import (
	"context"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

type ProfileResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileProvider
type ProfileProvider interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
}

func New(log *slog.Logger, profiles ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.getProfile.New"

		log := log.With(slog.String("op", op))

		sess, ok := session.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		user, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load profile"))
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
