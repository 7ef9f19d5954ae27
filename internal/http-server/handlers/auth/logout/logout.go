package logout

import (
	"log/slog"
	"net/http"

	"carRental/internal/http-server/middleware/mwsession"
	"carRental/internal/lib/api/response"
	"carRental/internal/session"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionEnder
type SessionEnder interface {
	End(id string) bool
}

// New ends the current session, if any, and always clears the cookie.
func New(log *slog.Logger, sessions SessionEnder, cookie mwsession.Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		if sess, ok := session.FromContext(r.Context()); ok {
			if sessions.End(sess.ID) {
				log.Info("session ended", slog.String("user_id", sess.UserID))
			}
		}

		cookie.Clear(w)

		render.JSON(w, r, response.OK())
	}
}
