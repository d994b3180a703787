package login

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
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	response.Response
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	SignIn(ctx context.Context, sess *store.Session, email, password string) (models.User, error)
}

// New signs the session in. Rejected credentials answer 401 with the provider's message.
func New(log *slog.Logger, authenticator Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

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

		user, err := authenticator.SignIn(r.Context(), sess, req.Email, req.Password)
		if err != nil {
			var credErr *storage.CredentialsError

			switch {
			case errors.As(err, &credErr):
				log.Info("login rejected", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(credErr.Error()))
			case errors.Is(err, storage.ErrInvalidCredentials):
				log.Info("login rejected", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(storage.ErrInvalidCredentials.Error()))
			default:
				log.Error("failed to sign in", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to sign in"))
			}
			return
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, AuthResponse{
			Response:    response.OK(),
			User:        user,
			AccessToken: sess.Auth.Token(),
		})
	}
}
