package createCategory

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

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required,lowercase"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

type CategoryResponse struct {
	response.Response
	Category models.Category `json:"category"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryCreator
type CategoryCreator interface {
	Create(ctx context.Context, sess *store.Session, in models.CategoryInput) (models.Category, error)
}

func New(log *slog.Logger, creator CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.createCategory.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		var req CategoryRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		category, err := creator.Create(r.Context(), sess, models.CategoryInput(req))
		if err != nil {
			log.Error("failed to create category", slog.String("slug", req.Slug), sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrCategoryExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("category already exists"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create category"))
			}
			return
		}

		log.Info("category created", slog.String("id", category.ID), slog.String("slug", category.Slug))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, CategoryResponse{
			Response: response.OK(),
			Category: category,
		})
	}
}
