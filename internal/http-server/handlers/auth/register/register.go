package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"carRental/internal/lib/api/response"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/models"
	"carRental/internal/rentalapi"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Pincode         string `json:"pincode"`
}

type RegisterResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registerer
type Registerer interface {
	RegisterUser(ctx context.Context, in rentalapi.Registration) (*models.User, error)
}

func New(log *slog.Logger, registerer Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

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

		user, err := registerer.RegisterUser(r.Context(), rentalapi.Registration{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
			Password:    req.Password,
			City:        req.City,
			State:       req.State,
			Country:     req.Country,
			Pincode:     req.Pincode,
		})
		if err != nil {
			log.Error("failed to register user", sl.Err(err))

			var statusErr *rentalapi.StatusError
			if errors.As(err, &statusErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(statusErr.Message))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.String("email", req.Email))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
