package updateSection

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"carRental/internal/checkout"
	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const maxSectionBytes = 64 << 10

type SectionResponse struct {
	response.Response
	Draft    checkout.Draft    `json:"draft"`
	Progress checkout.Progress `json:"progress"`
	Ready    bool              `json:"ready"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DraftUpdater
type DraftUpdater interface {
	Update(sessionID string, rentableID models.ID, section checkout.Section, data json.RawMessage) (checkout.Draft, error)
}

// New stores one sub-form of the checkout draft. Invalid input is kept in
// the draft and reported with 422 alongside the updated progress.
func New(log *slog.Logger, drafts DraftUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.updateSection.New"

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

		section, err := checkout.ParseSection(chi.URLParam(r, "section"))
		if err != nil {
			log.Error("unknown section", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown checkout section"))
			return
		}

		log = log.With(
			slog.String("rentable_id", id),
			slog.String("section", string(section)),
		)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxSectionBytes))
		if err != nil {
			log.Error("failed to read request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read request"))
			return
		}

		draft, err := drafts.Update(sess.ID, models.ID(id), section, body)
		if err != nil {
			log.Info("section rejected", sl.Err(err))

			var validateErr validator.ValidationErrors

			switch {
			case errors.Is(err, checkout.ErrMalformed):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, SectionResponse{
					Response: response.Error("failed to decode request"),
					Draft:    draft,
					Progress: draft.Progress,
					Ready:    draft.Progress.Ready(),
				})
			case errors.As(err, &validateErr):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, SectionResponse{
					Response: response.ValidationError(validateErr),
					Draft:    draft,
					Progress: draft.Progress,
					Ready:    draft.Progress.Ready(),
				})
			case errors.Is(err, checkout.ErrPaymentPending):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, SectionResponse{
					Response: response.Error(checkout.ErrPaymentPending.Error()),
					Draft:    draft,
					Progress: draft.Progress,
					Ready:    draft.Progress.Ready(),
				})
			case errors.Is(err, checkout.ErrInvalidRange):
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, SectionResponse{
					Response: response.Error(checkout.ErrInvalidRange.Error()),
					Draft:    draft,
					Progress: draft.Progress,
					Ready:    draft.Progress.Ready(),
				})
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update checkout"))
			}
			return
		}

		render.JSON(w, r, SectionResponse{
			Response: response.OK(),
			Draft:    draft,
			Progress: draft.Progress,
			Ready:    draft.Progress.Ready(),
		})
	}
}
