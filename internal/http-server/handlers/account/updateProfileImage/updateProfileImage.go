package updateProfileImage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

const (
	formField     = "profileImage"
	maxImageBytes = 5 << 20
)

type ImageResponse struct {
	response.Response
	ProfileImage string `json:"profileImage"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageUploader
type ImageUploader interface {
	UpdateProfileImage(ctx context.Context, token string, userID models.ID, filename string, image io.Reader) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileCache
type ProfileCache interface {
	Current(ctx context.Context, sess session.Session) (*models.User, error)
	Invalidate(sessionID string)
}

func New(log *slog.Logger, uploader ImageUploader, profiles ProfileCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.account.updateProfileImage.New"

		log := log.With(slog.String("op", op))

		sess, ok := session.FromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+(1<<20))

		file, header, err := r.FormFile(formField)
		if err != nil {
			log.Error("failed to read image", sl.Err(err))

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				render.Status(r, http.StatusRequestEntityTooLarge)
				render.JSON(w, r, response.Error("image is too large"))
				return
			}

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("profileImage file is required"))
			return
		}
		defer file.Close()

		if header.Size > maxImageBytes {
			log.Error("image too large", slog.Int64("size", header.Size))
			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, response.Error("image is too large"))
			return
		}

		user, err := profiles.Current(r.Context(), sess)
		if err != nil {
			log.Error("failed to load profile", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load profile"))
			return
		}

		url, err := uploader.UpdateProfileImage(r.Context(), sess.Token, user.ID, header.Filename, file)
		if err != nil {
			log.Error("failed to upload image", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to upload image"))
			return
		}

		profiles.Invalidate(sess.ID)

		log.Info("profile image updated", slog.String("user_id", user.ID.String()))

		render.JSON(w, r, ImageResponse{
			Response:     response.OK(),
			ProfileImage: url,
		})
	}
}
