package mwauth

import (
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

// RequireAdmin answers 401 to anonymous callers and 403 to signed-in non-admins.
func RequireAdmin(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			sess := mwsession.FromContext(r.Context())

			if !sess.Auth.IsAuthenticated() {
				log.Info("anonymous request to admin route", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			if !sess.Auth.IsAdmin() {
				log.Warn("non-admin request to admin route",
					slog.String("path", r.URL.Path),
					slog.String("user_id", sess.Auth.User().ID),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
