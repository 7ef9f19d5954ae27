package mwsession

import (
	"log/slog"
	"net/http"
	"time"

	"carRental/internal/lib/api/response"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

type SessionGetter interface {
	Get(id string) (session.Session, error)
}

// Cookie writes and clears the session cookie.
type Cookie struct {
	Name   string
	Secure bool
}

func (c Cookie) Set(w http.ResponseWriter, sess session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// New loads the session named by the cookie into the request context. A
// stale cookie is cleared and the request continues anonymously.
func New(log *slog.Logger, store SessionGetter, cookie Cookie) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/session"),
		)

		log.Info("session middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.Name)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(c.Value)
			if err != nil {
				log.Debug("dropping stale session cookie", slog.String("reason", err.Error()))
				cookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAuth rejects requests that carry no session.
func RequireAuth(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
