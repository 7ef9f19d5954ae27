// Package session keeps the API token of each signed-in browser and tells
// subscribers when a session starts or ends, so dependent state is dropped
// or refreshed without anyone polling for token changes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoSession    = errors.New("session not found")
	ErrExpired      = errors.New("session expired")
	ErrInvalidToken = errors.New("invalid session token")
)

type Session struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
}

type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind    EventKind
	Session Session
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	subs     map[int]func(Event)
	nextSub  int
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		subs:     make(map[int]func(Event)),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start opens a session for an API token. The session lives for the store
// TTL or until the token's own exp claim, whichever comes first.
func (s *Store) Start(token string) (Session, error) {
	const op = "session.Store.Start"

	if token == "" {
		return Session{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	sess := Session{
		ID:    uuid.NewString(),
		Token: token,
	}

	// Opaque tokens simply live for the store TTL.
	if claims, ok := peekClaims(token); ok {
		sess.UserID = claims.Subject

		if claims.ExpiresAt != nil {
			if !claims.ExpiresAt.Time.After(now) {
				return Session{}, fmt.Errorf("%s: %w", op, ErrExpired)
			}
			if claims.ExpiresAt.Time.Before(expiresAt) {
				expiresAt = claims.ExpiresAt.Time
			}
		}
	}

	sess.ExpiresAt = expiresAt

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.notify(Event{Kind: EventStarted, Session: sess})

	return sess, nil
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, ErrNoSession
	}

	if !sess.ExpiresAt.After(s.now()) {
		s.End(id)
		return Session{}, ErrExpired
	}

	return sess, nil
}

// End removes the session. It reports false when there was nothing to end.
func (s *Store) End(id string) bool {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		s.notify(Event{Kind: EventEnded, Session: sess})
	}

	return ok
}

// Sweep ends every expired session and returns how many were ended.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var expired []Session
	for id, sess := range s.sessions {
		if !sess.ExpiresAt.After(now) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		s.notify(Event{Kind: EventEnded, Session: sess})
	}

	return len(expired)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Subscribe registers fn for every start and end event. Callbacks run
// synchronously on the goroutine that changed the store and must not call
// back into Subscribe or the returned cancel func.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.mu.RLock()
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// peekClaims reads the registered claims without checking the signature;
// the remote API verifies the token on every call.
func peekClaims(token string) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	return claims, true
}

type ctxKey struct{}

func NewContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(Session)
	return sess, ok
}
