// Package mwsession attaches the caller's session to the request context.
package mwsession

import (
	"context"
	"errors"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/session"
	"eventsBoard/internal/store"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strings"
)

const (
	CookieName = "sid"
	HeaderName = "X-Session-ID"
)

type ctxKey struct{}

type Manager interface {
	New() *store.Session
	Get(ctx context.Context, id string) (*store.Session, error)
	Persist(ctx context.Context, sess *store.Session) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Restorer
type Restorer interface {
	Restore(ctx context.Context, sess *store.Session, token string) (*models.User, error)
}

func WithSession(ctx context.Context, sess *store.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the request's session. Outside the middleware it returns a
// throwaway anonymous session.
func FromContext(ctx context.Context) *store.Session {
	if sess, ok := ctx.Value(ctxKey{}).(*store.Session); ok && sess != nil {
		return sess
	}
	return store.NewSession("")
}

// New resolves the session from the sid cookie or X-Session-ID header, starting a new one
// when neither names a live session. A bearer token is adopted into the session. The
// session is persisted after every request, which slides its expiry.
func New(log *slog.Logger, mgr Manager, auth Restorer, secureCookie bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/session"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := resolve(ctx, log, mgr, requestedID(r))

			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(HeaderName, sess.ID)

			if token := bearer(r); token != "" && token != sess.Auth.Token() {
				if _, err := auth.Restore(ctx, sess, token); err != nil {
					log.Warn("rejected bearer token", slog.String("session", sess.ID), sl.Err(err))
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid access token"))
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))

			if err := mgr.Persist(context.WithoutCancel(ctx), sess); err != nil {
				log.Error("failed to persist session", slog.String("session", sess.ID), sl.Err(err))
			}
		}

		return http.HandlerFunc(fn)
	}
}

func resolve(ctx context.Context, log *slog.Logger, mgr Manager, id string) *store.Session {
	if id == "" {
		return mgr.New()
	}

	sess, err := mgr.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Error("failed to load session", slog.String("session", id), sl.Err(err))
		}
		return mgr.New()
	}

	return sess
}

func requestedID(r *http.Request) string {
	if id := r.Header.Get(HeaderName); id != "" {
		return id
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
