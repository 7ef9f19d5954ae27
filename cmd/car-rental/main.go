package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carRental/internal/account"
	"carRental/internal/checkout"
	"carRental/internal/config"
	"carRental/internal/http-server/handlers/account/getProfile"
	"carRental/internal/http-server/handlers/account/listBookings"
	"carRental/internal/http-server/handlers/account/updatePassword"
	"carRental/internal/http-server/handlers/account/updateProfile"
	"carRental/internal/http-server/handlers/account/updateProfileImage"
	"carRental/internal/http-server/handlers/auth/login"
	"carRental/internal/http-server/handlers/auth/logout"
	"carRental/internal/http-server/handlers/auth/register"
	"carRental/internal/http-server/handlers/auth/sendOTP"
	"carRental/internal/http-server/handlers/auth/verifyOTP"
	"carRental/internal/http-server/handlers/cars/getCar"
	"carRental/internal/http-server/handlers/cars/listCars"
	"carRental/internal/http-server/handlers/cars/searchCars"
	"carRental/internal/http-server/handlers/checkout/getCheckout"
	"carRental/internal/http-server/handlers/checkout/submitCheckout"
	"carRental/internal/http-server/handlers/checkout/updateSection"
	"carRental/internal/http-server/handlers/checkout/verifyPayment"
	"carRental/internal/http-server/middleware/mwlogger"
	"carRental/internal/http-server/middleware/mwsession"
	"carRental/internal/lib/logger/handlers/slogpretty"
	"carRental/internal/lib/logger/sl"
	"carRental/internal/notify"
	"carRental/internal/payment"
	"carRental/internal/rentalapi"
	"carRental/internal/scheduler"
	"carRental/internal/search"
	"carRental/internal/session"
	"carRental/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting car rental gateway", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	sessions := session.NewStore(cfg.Session.DefaultTTL)
	drafts := checkout.NewDrafts()
	api := rentalapi.New(log, cfg.API.URL, cfg.API.Timeout)
	profiles := account.NewProfiles(api)

	sessions.Subscribe(drafts.OnSessionEvent)
	sessions.Subscribe(profiles.OnSessionEvent)

	notifier := setupNotifier(log, cfg.Notify)

	sequencer := checkout.NewSequencer(
		log,
		drafts,
		api,
		payment.NewScriptLoader(cfg.Payment.ScriptURL, cfg.Payment.ScriptTimeout),
		storage,
		notifier,
		checkout.WidgetSettings{
			KeyID:       cfg.Payment.KeyID,
			Currency:    cfg.Payment.Currency,
			Merchant:    cfg.Payment.Merchant,
			Description: cfg.Payment.Description,
			ThemeColor:  cfg.Payment.ThemeColor,
		},
	)

	jobs, err := scheduler.New(log, cfg.Scheduler, sessions, storage)
	if err != nil {
		log.Error("failed to init scheduler", sl.Err(err))
		os.Exit(1)
	}

	cookie := mwsession.Cookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwsession.New(log, sessions, cookie))

	router.Route("/cars", func(r chi.Router) {
		r.Get("/", listCars.New(log, api))

		if cfg.Search.Server != "" {
			index := search.NewTypesense(log, cfg.Search.Server, cfg.Search.APIKey, cfg.Search.Collection, cfg.Search.Timeout)
			r.Get("/search", searchCars.New(log, index))
		} else {
			log.Warn("search index is not configured, /cars/search is disabled")
		}

		r.Get("/{id}", getCar.New(log, api))
	})

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", register.New(log, api))
		r.Post("/login", login.New(log, api, sessions, profiles, cookie))
		r.Post("/logout", logout.New(log, sessions, cookie))
		r.Post("/otp/send", sendOTP.New(log, api))
		r.Post("/otp/verify", verifyOTP.New(log, api, sessions, profiles, cookie))
	})

	router.Group(func(r chi.Router) {
		r.Use(mwsession.RequireAuth)

		r.Route("/checkout/{id}", func(r chi.Router) {
			r.Get("/", getCheckout.New(log, api, profiles, drafts))
			r.Put("/{section}", updateSection.New(log, drafts))
			r.Post("/submit", submitCheckout.New(log, api, profiles, sequencer))
			r.Post("/verify", verifyPayment.New(log, api, profiles, sequencer))
		})

		r.Route("/account", func(r chi.Router) {
			r.Get("/", getProfile.New(log, profiles))
			r.Put("/", updateProfile.New(log, api, profiles))
			r.Put("/password", updatePassword.New(log, api, profiles))
			r.Put("/image", updateProfileImage.New(log, api, profiles))
			r.Get("/bookings", listBookings.New(log, api))
		})
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.HTTPServer.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
		handlers.AllowCredentials(),
	)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      cors(router),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	jobs.Start()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	jobs.Stop(ctx)
	notifier.Wait()

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

// setupNotifier enables each confirmation channel only when its credentials
// are present.
func setupNotifier(log *slog.Logger, cfg config.Notify) *notify.Notifier {
	var (
		email notify.EmailSender
		sms   notify.SMSSender
	)

	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		email = notify.NewSendGrid(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)
	} else {
		log.Warn("sendgrid is not configured, confirmation emails are disabled")
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		sms = notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	} else {
		log.Warn("twilio is not configured, confirmation sms are disabled")
	}

	return notify.New(log, email, sms)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
