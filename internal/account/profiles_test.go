package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carRental/internal/account"
	"carRental/internal/account/mocks"
	"carRental/internal/models"
	"carRental/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfilesCachePerSession(t *testing.T) {
	t.Parallel()

	fetcher := mocks.NewUserFetcher(t)
	fetcher.On("FetchUser", mock.Anything, "tok-1").Return(&models.User{ID: "u1", FirstName: "Ada"}, nil).Once()
	fetcher.On("FetchUser", mock.Anything, "tok-2").Return(&models.User{ID: "u2", FirstName: "Grace"}, nil).Once()

	p := account.NewProfiles(fetcher)
	s1 := session.Session{ID: "s1", Token: "tok-1"}
	s2 := session.Session{ID: "s2", Token: "tok-2"}

	for i := 0; i < 3; i++ {
		u, err := p.Current(context.Background(), s1)
		require.NoError(t, err)
		assert.Equal(t, "Ada", u.FirstName)
	}

	u, err := p.Current(context.Background(), s2)
	require.NoError(t, err)
	assert.Equal(t, "Grace", u.FirstName)
}

func TestProfilesInvalidateOnSessionEvents(t *testing.T) {
	t.Parallel()

	fetcher := mocks.NewUserFetcher(t)
	fetcher.On("FetchUser", mock.Anything, "tok").Return(&models.User{ID: "u1"}, nil).Times(3)

	store := session.NewStore(time.Hour)
	p := account.NewProfiles(fetcher)
	cancel := store.Subscribe(p.OnSessionEvent)
	defer cancel()

	sess, err := store.Start("tok")
	require.NoError(t, err)

	_, err = p.Current(context.Background(), sess)
	require.NoError(t, err)

	store.End(sess.ID)
	_, err = p.Current(context.Background(), sess)
	require.NoError(t, err)

	p.OnSessionEvent(session.Event{Kind: session.EventStarted, Session: sess})
	_, err = p.Current(context.Background(), sess)
	require.NoError(t, err)
}

func TestProfilesPutAndErrors(t *testing.T) {
	t.Parallel()

	fetcher := mocks.NewUserFetcher(t)
	fetcher.On("FetchUser", mock.Anything, "bad").Return(nil, errors.New("unauthorized")).Once()

	p := account.NewProfiles(fetcher)

	_, err := p.Current(context.Background(), session.Session{ID: "s1", Token: "bad"})
	require.Error(t, err)

	p.Put("s1", models.User{ID: "u1", City: "Kochi"})

	u, err := p.Current(context.Background(), session.Session{ID: "s1", Token: "bad"})
	require.NoError(t, err)
	assert.Equal(t, "Kochi", u.City)
}
