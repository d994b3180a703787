package me

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

type UserResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthChecker
type AuthChecker interface {
	CheckAuth(ctx context.Context, sess *store.Session) (*models.User, error)
}

// New reports the signed-in user, or "user": null for an anonymous session.
func New(log *slog.Logger, checker AuthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		user, err := checker.CheckAuth(r.Context(), sess)
		if err != nil {
			log.Error("failed to check auth", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check authentication"))
			return
		}

		render.JSON(w, r, UserResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
