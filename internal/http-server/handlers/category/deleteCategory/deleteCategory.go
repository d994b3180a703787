package deleteCategory

import (
	"context"
	"errors"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/storage"
	"eventsBoard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryDeleter
type CategoryDeleter interface {
	Delete(ctx context.Context, sess *store.Session, id string) error
}

func New(log *slog.Logger, deleter CategoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.deleteCategory.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("category id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("category id is required"))
			return
		}

		if err := deleter.Delete(r.Context(), sess, id); err != nil {
			log.Error("failed to delete category", slog.String("category_id", id), sl.Err(err))

			if errors.Is(err, storage.ErrForbidden) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete category"))
			return
		}

		log.Info("category deleted", slog.String("category_id", id))

		render.JSON(w, r, response.OK())
	}
}
