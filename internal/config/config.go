package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string    `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   Database  `yaml:"database"`
	API        API       `yaml:"api"`
	Search     Search    `yaml:"search"`
	Payment    Payment   `yaml:"payment"`
	Session    Session   `yaml:"session"`
	Notify     Notify    `yaml:"notify"`
	Scheduler  Scheduler `yaml:"scheduler"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"car_rental"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// API is the remote GraphQL backend that owns inventory, bookings and auth.
type API struct {
	URL     string        `yaml:"url" env:"API_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Search struct {
	Server     string        `yaml:"server" env:"TYPESENSE_SERVER"`
	APIKey     string        `yaml:"api_key" env:"TYPESENSE_API_KEY"`
	Collection string        `yaml:"collection" env-default:"cars"`
	Timeout    time.Duration `yaml:"timeout" env-default:"2s"`
}

type Payment struct {
	KeyID         string        `yaml:"key_id" env:"PAYMENT_KEY_ID" env-required:"true"`
	ScriptURL     string        `yaml:"script_url" env-default:"https://checkout.razorpay.com/v1/checkout.js"`
	ScriptTimeout time.Duration `yaml:"script_timeout" env-default:"5s"`
	Currency      string        `yaml:"currency" env-default:"INR"`
	Merchant      string        `yaml:"merchant" env-default:"Car Rental"`
	Description   string        `yaml:"description" env-default:"Car booking"`
	ThemeColor    string        `yaml:"theme_color" env-default:"#3563E9"`
}

type Session struct {
	CookieName string        `yaml:"cookie_name" env-default:"session_id"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"true"`
	DefaultTTL time.Duration `yaml:"default_ttl" env-default:"1h"`
}

type Notify struct {
	SendGridAPIKey    string `yaml:"sendgrid_api_key" env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `yaml:"sendgrid_from_email" env:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `yaml:"sendgrid_from_name" env-default:"Car Rental"`
	TwilioAccountSID  string `yaml:"twilio_account_sid" env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `yaml:"twilio_auth_token" env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber  string `yaml:"twilio_from_number" env:"TWILIO_FROM_NUMBER"`
}

type Scheduler struct {
	SweepSessions  string        `yaml:"sweep_sessions" env-default:"@every 1m"`
	ExpireAttempts string        `yaml:"expire_attempts" env-default:"@every 5m"`
	AttemptTTL     time.Duration `yaml:"attempt_ttl" env-default:"30m"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
