package signUp

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

type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthResponse struct {
	response.Response
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	SignUp(ctx context.Context, sess *store.Session, name, email, password string) (models.User, error)
}

func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signUp.New"

		sess := mwsession.FromContext(r.Context())

		log := log.With(
			slog.String("op", op),
			slog.String("session", sess.ID),
		)

		var req Request

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

		user, err := registrar.SignUp(r.Context(), sess, req.Name, req.Email, req.Password)
		if err != nil {
			log.Error("failed to sign up", sl.Err(err))

			if errors.Is(err, storage.ErrUserExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already registered"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to sign up"))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, AuthResponse{
			Response:    response.OK(),
			User:        user,
			AccessToken: sess.Auth.Token(),
		})
	}
}
