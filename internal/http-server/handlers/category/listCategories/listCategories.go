package listCategories

import (
	"context"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type CategoriesResponse struct {
	response.Response
	Categories []models.Category `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryLister
type CategoryLister interface {
	List(ctx context.Context, sess *store.Session) ([]models.Category, error)
}

func New(log *slog.Logger, lister CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.listCategories.New"

		log := log.With(slog.String("op", op))

		categories, err := lister.List(r.Context(), mwsession.FromContext(r.Context()))
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		log.Info("categories retrieved successfully", slog.Int("count", len(categories)))

		responseOK(w, r, categories)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, categories []models.Category) {
	if categories == nil {
		categories = []models.Category{}
	}

	render.JSON(w, r, CategoriesResponse{
		Response:   response.OK(),
		Categories: categories,
	})
}
