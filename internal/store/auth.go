package store

import (
	"context"
	"errors"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/lib/tokens"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"log/slog"
)

// TokenVerifier checks an access token locally before it is trusted.
type TokenVerifier interface {
	Parse(token string) (*tokens.Claims, error)
}

type AuthService struct {
	log      *slog.Logger
	backend  AuthBackend
	verifier TokenVerifier
}

// NewAuthService builds the service. verifier may be nil, in which case tokens are only
// checked against the backend.
func NewAuthService(log *slog.Logger, backend AuthBackend, verifier TokenVerifier) *AuthService {
	return &AuthService{log: log, backend: backend, verifier: verifier}
}

func (s *AuthService) SignUp(ctx context.Context, sess *Session, name, email, password string) (models.User, error) {
	const op = "store.AuthService.SignUp"

	log := s.log.With(slog.String("op", op), slog.String("session", sess.ID))

	auth, err := s.backend.SignUp(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	// Projects with email confirmation disabled still answer signup without a session.
	if auth.AccessToken == "" {
		auth, err = s.backend.SignIn(ctx, email, password)
		if err != nil {
			return models.User{}, fmt.Errorf("%s: sign in after signup: %w", op, err)
		}
	}

	user := models.User{
		ID:    auth.User.ID,
		Name:  name,
		Email: email,
		Role:  models.RoleUser,
	}

	if err := s.backend.UpsertProfile(ctx, auth.AccessToken, user); err != nil {
		return models.User{}, fmt.Errorf("%s: create profile: %w", op, err)
	}

	s.adopt(sess, user, auth.AccessToken)

	log.Info("user signed up", slog.String("user_id", user.ID))

	return user, nil
}

// SignIn exchanges credentials for a token and loads the user's profile.
// A credential mismatch comes back wrapping storage.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, sess *Session, email, password string) (models.User, error) {
	const op = "store.AuthService.SignIn"

	auth, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.profile(ctx, auth.AccessToken, auth.User)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.adopt(sess, user, auth.AccessToken)

	s.log.Info("user signed in",
		slog.String("op", op),
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// SignOut always clears the session. A backend failure is logged, not returned.
func (s *AuthService) SignOut(ctx context.Context, sess *Session) {
	const op = "store.AuthService.SignOut"

	if token := sess.Auth.Token(); token != "" {
		if err := s.backend.SignOut(ctx, token); err != nil {
			s.log.Warn("backend sign out failed", slog.String("op", op), sl.Err(err))
		}
	}

	sess.Auth.Clear()
	sess.Events.invalidate()
}

// CheckAuth re-validates the session token with the backend. A token the backend no
// longer accepts signs the session out.
func (s *AuthService) CheckAuth(ctx context.Context, sess *Session) (*models.User, error) {
	const op = "store.AuthService.CheckAuth"

	token := sess.Auth.Token()
	if token == "" {
		return nil, nil
	}

	id, err := s.backend.CurrentUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if id == nil {
		sess.Auth.Clear()
		sess.Events.invalidate()
		return nil, nil
	}

	if current := sess.Auth.User(); current != nil && current.ID == id.ID {
		return current, nil
	}

	user, err := s.profile(ctx, token, *id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.adopt(sess, user, token)

	return &user, nil
}

// Restore adopts a bearer token presented by an API client.
func (s *AuthService) Restore(ctx context.Context, sess *Session, token string) (*models.User, error) {
	const op = "store.AuthService.Restore"

	if token == "" {
		return nil, storage.ErrUnauthenticated
	}

	if token == sess.Auth.Token() {
		return sess.Auth.User(), nil
	}

	if s.verifier != nil {
		if _, err := s.verifier.Parse(token); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", op, storage.ErrUnauthenticated, err)
		}
	}

	id, err := s.backend.CurrentUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if id == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUnauthenticated)
	}

	user, err := s.profile(ctx, token, *id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.adopt(sess, user, token)

	return &user, nil
}

// profile merges the stored profile over the auth identity. Users without a profile
// row get the default role.
func (s *AuthService) profile(ctx context.Context, token string, id models.Identity) (models.User, error) {
	user := models.User{ID: id.ID, Email: id.Email, Role: models.RoleUser}

	p, err := s.backend.GetProfile(ctx, token, id.ID)
	if err != nil {
		if errors.Is(err, storage.ErrForbidden) {
			return user, nil
		}
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return user, nil
	}

	user.Name = p.Name
	user.CreatedAt = p.CreatedAt
	if p.Role != "" {
		user.Role = p.Role
	}
	if p.Email != "" {
		user.Email = p.Email
	}

	return user, nil
}

// adopt switches the session to a new identity. Cached events depend on who asked for
// them, so they are dropped.
func (s *AuthService) adopt(sess *Session, user models.User, token string) {
	sess.Auth.Set(user, token)
	sess.Events.invalidate()
}
