package sendOTP

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/rentalapi"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type SendResponse struct {
	response.Response
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OTPSender
type OTPSender interface {
	SendOTP(ctx context.Context, phoneNumber string) (string, error)
}

func New(log *slog.Logger, sender OTPSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.sendOTP.New"

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

		msg, err := sender.SendOTP(r.Context(), req.PhoneNumber)
		if err != nil {
			log.Error("failed to send otp", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to send otp"))
			return
		}

		render.JSON(w, r, SendResponse{
			Response: response.OK(),
			Message:  msg,
		})
	}
}
