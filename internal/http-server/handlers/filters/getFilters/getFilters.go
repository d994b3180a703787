package getFilters

import (
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type FiltersResponse struct {
	response.Response
	Filters models.EventFilters `json:"filters"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FiltersGetter
type FiltersGetter interface {
	Filters(sess *store.Session) models.EventFilters
}

func New(log *slog.Logger, getter FiltersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.filters.getFilters.New"

		sess := mwsession.FromContext(r.Context())

		log.Debug("filters requested", slog.String("op", op), slog.String("session", sess.ID))

		render.JSON(w, r, FiltersResponse{
			Response: response.OK(),
			Filters:  getter.Filters(sess),
		})
	}
}
