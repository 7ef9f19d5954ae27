package logout

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"carRental/internal/http-server/handlers/auth/logout/mocks"
	"carRental/internal/http-server/middleware/mwsession"
	"carRental/internal/lib/logger/handlers/slogdiscard"
	"carRental/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	cookie := mwsession.Cookie{Name: "session_id"}

	testCases := []struct {
		name      string
		sess      *session.Session
		mockSetup func(m *mocks.SessionEnder)
	}{
		{
			name: "Ends current session",
			sess: &session.Session{ID: "sess-1"},
			mockSetup: func(m *mocks.SessionEnder) {
				m.On("End", "sess-1").Return(true)
			},
		},
		{
			name: "Already gone",
			sess: &session.Session{ID: "sess-2"},
			mockSetup: func(m *mocks.SessionEnder) {
				m.On("End", "sess-2").Return(false)
			},
		},
		{
			name:      "Anonymous",
			mockSetup: func(m *mocks.SessionEnder) {},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ender := mocks.NewSessionEnder(t)
			tc.mockSetup(ender)

			router := chi.NewRouter()
			router.Post("/auth/logout", New(logger, ender, cookie))

			req, err := http.NewRequest(http.MethodPost, "/auth/logout", nil)
			require.NoError(t, err)

			if tc.sess != nil {
				req = req.WithContext(session.NewContext(req.Context(), *tc.sess))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
