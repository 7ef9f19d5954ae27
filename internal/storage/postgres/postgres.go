package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carRental/internal/checkout"
	"carRental/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Storage keeps the checkout attempt ledger. Bookings themselves live in the
// remote API.
type Storage struct {
	DB  *sqlx.DB
	now func() time.Time
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db, now: time.Now}, nil
}

// New wraps an already open connection.
func New(db *sql.DB) *Storage {
	return &Storage{DB: sqlx.NewDb(db, "postgres"), now: time.Now}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) PendingKey(ctx context.Context, sessionID, rentableID string, amountMinor int64) (string, error) {
	query := `
		SELECT idempotency_key
		FROM checkout_attempts
		WHERE session_id = $1 AND rentable_id = $2 AND amount_minor = $3 AND status = $4
		ORDER BY created_at DESC
		LIMIT 1`

	var key string
	err := s.DB.GetContext(ctx, &key, query, sessionID, rentableID, amountMinor, checkout.AttemptPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", checkout.ErrAttemptNotFound
		}
		return "", fmt.Errorf("failed to find pending attempt: %w", err)
	}

	return key, nil
}

func (s *Storage) Begin(ctx context.Context, a checkout.Attempt) error {
	query := `
		INSERT INTO checkout_attempts
			(idempotency_key, session_id, rentable_id, amount_minor, currency, status, created_at, updated_at)
		VALUES
			(:idempotency_key, :session_id, :rentable_id, :amount_minor, :currency, :status, :created_at, :updated_at)`

	now := s.now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = checkout.AttemptPending
	}

	if _, err := s.DB.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return nil
}

func (s *Storage) AttachOrder(ctx context.Context, key, orderID string) error {
	query := `
		UPDATE checkout_attempts
		SET order_id = $2, updated_at = $3
		WHERE idempotency_key = $1`

	res, err := s.DB.ExecContext(ctx, query, key, orderID, s.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to attach order: %w", err)
	}

	return affected(res, "attach order")
}

func (s *Storage) KeyForOrder(ctx context.Context, orderID string) (string, error) {
	query := `
		SELECT idempotency_key
		FROM checkout_attempts
		WHERE order_id = $1`

	var key string
	err := s.DB.GetContext(ctx, &key, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", checkout.ErrAttemptNotFound
		}
		return "", fmt.Errorf("failed to find attempt for order: %w", err)
	}

	return key, nil
}

// Finish closes a pending attempt. Closed attempts are never reopened.
func (s *Storage) Finish(ctx context.Context, key string, status checkout.AttemptStatus) error {
	query := `
		UPDATE checkout_attempts
		SET status = $2, updated_at = $3
		WHERE idempotency_key = $1 AND status = $4`

	res, err := s.DB.ExecContext(ctx, query, key, status, s.now().UTC(), checkout.AttemptPending)
	if err != nil {
		return fmt.Errorf("failed to finish attempt: %w", err)
	}

	return affected(res, "finish attempt")
}

// ExpireStale marks attempts that stayed pending longer than olderThan as
// expired so their keys are not reused.
func (s *Storage) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE checkout_attempts
		SET status = $1, updated_at = $2
		WHERE status = $3 AND created_at < $4`

	now := s.now().UTC()

	res, err := s.DB.ExecContext(ctx, query, checkout.AttemptExpired, now, checkout.AttemptPending, now.Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale attempts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale attempts: %w", err)
	}

	return n, nil
}

func affected(res sql.Result, action string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	if n == 0 {
		return fmt.Errorf("failed to %s: %w", action, checkout.ErrAttemptNotFound)
	}

	return nil
}
