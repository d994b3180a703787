package submitEvent

import (
	"context"
	"errors"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type LocationRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
}

type EventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate     string          `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location    LocationRequest `json:"location"`
	Link        string          `json:"link" validate:"required,url"`
	ImageURL    string          `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Organizer   string          `json:"organizer"`
}

func (req EventRequest) input() models.EventInput {
	return models.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		EndDate:     req.EndDate,
		Location:    models.Location(req.Location),
		Link:        req.Link,
		ImageURL:    req.ImageURL,
		Organizer:   req.Organizer,
	}
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSubmitter
type EventSubmitter interface {
	Submit(ctx context.Context, sess *store.Session, in models.EventInput) (models.Event, error)
}

func New(log *slog.Logger, submitter EventSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.submitEvent.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if req.EndDate != "" && req.EndDate < req.Date {
			log.Error("end date before start date")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field EndDate must not be before Date"))

			return
		}

		event, err := submitter.Submit(r.Context(), sess, req.input())
		if err != nil {
			log.Error("failed to submit event", sl.Err(err))

			switch {
			case errors.Is(err, store.ErrSubmitInFlight):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("a submission is already in progress"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not allowed to submit events"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit event"))
			}

			return
		}

		log.Info("event submitted", slog.String("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
