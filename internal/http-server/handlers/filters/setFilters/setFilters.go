package setFilters

import (
	"errors"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
)

type FiltersResponse struct {
	response.Response
	Filters models.EventFilters `json:"filters"`
}

// patchDates holds the dereferenced dates of a patch; an explicit "" clears and is valid.
type patchDates struct {
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FiltersSetter
type FiltersSetter interface {
	SetFilters(sess *store.Session, patch models.FiltersPatch) models.EventFilters
}

// New merges the request body into the session filters. Omitted fields keep their value,
// an empty string clears one field.
func New(log *slog.Logger, setter FiltersSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.filters.setFilters.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		var patch models.FiltersPatch

		if err := render.DecodeJSON(r.Body, &patch); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		dates := patchDates{DateFrom: deref(patch.DateFrom), DateTo: deref(patch.DateTo)}

		if err := validator.New().Struct(dates); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		filters := setter.SetFilters(sess, patch)

		log.Info("filters updated", slog.Any("filters", filters))

		render.JSON(w, r, FiltersResponse{
			Response: response.OK(),
			Filters:  filters,
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
