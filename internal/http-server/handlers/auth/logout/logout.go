package logout

import (
	"context"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	SignOut(ctx context.Context, sess *store.Session)
}

func New(log *slog.Logger, closer SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		sess := mwsession.FromContext(r.Context())

		closer.SignOut(r.Context(), sess)

		log.Info("user logged out", slog.String("op", op), slog.String("session", sess.ID))

		render.JSON(w, r, response.OK())
	}
}
