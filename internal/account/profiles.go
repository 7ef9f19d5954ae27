package account

import (
	"context"
	"fmt"
	"sync"

	"carRental/internal/models"
	"carRental/internal/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserFetcher
type UserFetcher interface {
	FetchUser(ctx context.Context, token string) (*models.User, error)
}

// Profiles caches the signed-in user per session so pages that need it do
// not refetch on every request. Entries are dropped whenever the session
// starts or ends.
type Profiles struct {
	fetcher UserFetcher

	mu    sync.RWMutex
	users map[string]models.User
}

func NewProfiles(fetcher UserFetcher) *Profiles {
	return &Profiles{
		fetcher: fetcher,
		users:   make(map[string]models.User),
	}
}

// Current returns the user behind the session, fetching it on a miss.
func (p *Profiles) Current(ctx context.Context, sess session.Session) (*models.User, error) {
	const op = "account.Profiles.Current"

	p.mu.RLock()
	u, ok := p.users[sess.ID]
	p.mu.RUnlock()

	if ok {
		return &u, nil
	}

	fetched, err := p.fetcher.FetchUser(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.Put(sess.ID, *fetched)

	return fetched, nil
}

// Put replaces the cached user, e.g. after a profile update.
func (p *Profiles) Put(sessionID string, u models.User) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.users[sessionID] = u
}

func (p *Profiles) Invalidate(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.users, sessionID)
}

func (p *Profiles) OnSessionEvent(ev session.Event) {
	p.Invalidate(ev.Session.ID)
}
