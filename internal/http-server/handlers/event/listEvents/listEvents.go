package listEvents

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
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type EventsResponse struct {
	response.Response
	Events  []models.Event      `json:"events"`
	Filters models.EventFilters `json:"filters"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Fetch(ctx context.Context, sess *store.Session) ([]models.Event, error)
	Visible(ctx context.Context, sess *store.Session, override models.FiltersPatch) ([]models.Event, error)
	Filters(sess *store.Session) models.EventFilters
}

// New lists approved events matching the session filters. Query parameters override the
// stored filters for this request only, and an empty parameter (?category=) lifts that
// criterion. refresh=true reloads the cache first.
func New(log *slog.Logger, getter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		override, err := query.EventFilters(r)
		if err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid filters", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		if query.Bool(r, "refresh") {
			if _, err := getter.Fetch(r.Context(), sess); err != nil {
				log.Error("failed to refresh events", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get events"))
				return
			}
		}

		events, err := getter.Visible(r.Context(), sess, override)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events, getter.Filters(sess).Apply(override))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event, filters models.EventFilters) {
	if events == nil {
		events = []models.Event{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
		Filters:  filters,
	})
}
