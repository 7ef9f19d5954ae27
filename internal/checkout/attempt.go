package checkout

import (
	"context"
	"time"
)

type AttemptStatus string

const (
	AttemptPending  AttemptStatus = "pending"
	AttemptVerified AttemptStatus = "verified"
	AttemptFailed   AttemptStatus = "failed"
	AttemptExpired  AttemptStatus = "expired"
)

// Attempt is one press of the submit button, identified by the idempotency
// key sent with both payment calls.
type Attempt struct {
	Key         string        `db:"idempotency_key"`
	SessionID   string        `db:"session_id"`
	RentableID  string        `db:"rentable_id"`
	OrderID     *string       `db:"order_id"`
	AmountMinor int64         `db:"amount_minor"`
	Currency    string        `db:"currency"`
	Status      AttemptStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttemptLedger
type AttemptLedger interface {
	// PendingKey returns ErrAttemptNotFound when no pending attempt matches.
	PendingKey(ctx context.Context, sessionID, rentableID string, amountMinor int64) (string, error)
	Begin(ctx context.Context, a Attempt) error
	AttachOrder(ctx context.Context, key, orderID string) error
	// KeyForOrder returns ErrAttemptNotFound for an unknown order.
	KeyForOrder(ctx context.Context, orderID string) (string, error)
	Finish(ctx context.Context, key string, status AttemptStatus) error
}
