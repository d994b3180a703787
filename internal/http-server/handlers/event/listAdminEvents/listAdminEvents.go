package listAdminEvents

import (
	"context"
	"errors"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/query"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	Fetch(ctx context.Context, sess *store.Session) ([]models.Event, error)
	All(ctx context.Context, sess *store.Session) ([]models.Event, error)
	ByStatus(ctx context.Context, sess *store.Session, status models.EventStatus) ([]models.Event, error)
}

// New lists every event regardless of status, or only those matching ?status=.
func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listAdminEvents.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		if query.Bool(r, "refresh") {
			if _, err := lister.Fetch(r.Context(), sess); err != nil {
				log.Error("failed to refresh events", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get events"))
				return
			}
		}

		var (
			events []models.Event
			err    error
		)

		if status := r.URL.Query().Get("status"); status != "" {
			events, err = lister.ByStatus(r.Context(), sess, models.EventStatus(status))
		} else {
			events, err = lister.All(r.Context(), sess)
		}
		if err != nil {
			if errors.Is(err, store.ErrInvalidStatus) {
				log.Warn("invalid status filter", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event status"))
				return
			}

			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
