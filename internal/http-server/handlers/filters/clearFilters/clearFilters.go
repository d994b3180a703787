package clearFilters

import (
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FiltersClearer
type FiltersClearer interface {
	ClearFilters(sess *store.Session)
}

func New(log *slog.Logger, clearer FiltersClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.filters.clearFilters.New"

		sess := mwsession.FromContext(r.Context())

		clearer.ClearFilters(sess)

		log.Info("filters cleared", slog.String("op", op), slog.String("session", sess.ID))

		render.JSON(w, r, response.OK())
	}
}
