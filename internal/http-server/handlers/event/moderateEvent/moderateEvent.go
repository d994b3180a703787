package moderateEvent

import (
	"context"
	"errors"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"eventsBoard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ModerationResponse struct {
	response.Response
	ID          string             `json:"id"`
	EventStatus models.EventStatus `json:"eventStatus"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, sess *store.Session, id string, status models.EventStatus) error
}

// New moves the event named by the id URL param to status. The router mounts it once for
// approve and once for reject.
func New(log *slog.Logger, updater StatusUpdater, status models.EventStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.moderateEvent.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
			slog.String("status", string(status)),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", id))

		err := updater.UpdateStatus(r.Context(), sess, id, status)
		if err != nil {
			log.Error("failed to update event status", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
			case errors.Is(err, store.ErrInvalidStatus):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event status"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event status"))
			}

			return
		}

		log.Info("event status updated")

		responseOK(w, r, id, status)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id string, status models.EventStatus) {
	render.JSON(w, r, ModerationResponse{
		Response:    response.OK(),
		ID:          id,
		EventStatus: status,
	})
}
