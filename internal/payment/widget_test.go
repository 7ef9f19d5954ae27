package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptLoaderCachesSuccess(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("window.Razorpay = function() {};"))
	}))
	t.Cleanup(srv.Close)

	l := NewScriptLoader(srv.URL+"/v1/checkout.js", time.Second)

	require.NoError(t, l.Load(context.Background()))
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestScriptLoaderFailures(t *testing.T) {
	t.Parallel()

	var status atomic.Int32
	status.Store(http.StatusServiceUnavailable)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	t.Cleanup(srv.Close)

	l := NewScriptLoader(srv.URL, time.Second)

	err := l.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScriptUnavailable))

	status.Store(http.StatusOK)
	require.NoError(t, l.Load(context.Background()), "a failed load is not remembered")

	unreachable := NewScriptLoader("http://127.0.0.1:1/checkout.js", time.Second)
	err = unreachable.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScriptUnavailable))
}
