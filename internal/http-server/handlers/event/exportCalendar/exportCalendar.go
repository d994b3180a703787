package exportCalendar

import (
	"bytes"
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
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	ContentType     = "text/calendar; charset=utf-8"
	SkippedHeader   = "X-Skipped-Events"
	attachmentValue = `attachment; filename="events.ics"`
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Visible(ctx context.Context, sess *store.Session, override models.FiltersPatch) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CalendarEncoder
type CalendarEncoder interface {
	Encode(w io.Writer, events []models.Event) ([]string, error)
}

// New serves the visible events as an iCalendar attachment. It accepts the same filter
// query parameters as the events list.
func New(log *slog.Logger, getter EventsGetter, enc CalendarEncoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.exportCalendar.New"

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

		events, err := getter.Visible(r.Context(), sess, override)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		var buf bytes.Buffer

		skipped, err := enc.Encode(&buf, events)
		if err != nil {
			log.Error("failed to encode calendar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to export calendar"))
			return
		}

		if len(skipped) > 0 {
			log.Warn("events skipped in export", slog.Any("ids", skipped))
		}

		log.Info("calendar exported", slog.Int("count", len(events)-len(skipped)))

		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Disposition", attachmentValue)
		w.Header().Set(SkippedHeader, strconv.Itoa(len(skipped)))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.Error("failed to write calendar", sl.Err(err))
		}
	}
}
