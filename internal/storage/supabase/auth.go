package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"net/http"
	"net/url"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpResponse covers both GoTrue shapes: {user, session} and a flat session with a user.
type signUpResponse struct {
	models.AuthSession
	Session *models.AuthSession `json:"session"`
	ID      string              `json:"id"`
	Email   string              `json:"email"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (models.AuthSession, error) {
	const op = "storage.supabase.SignUp"

	var resp signUpResponse

	err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   authPrefix + "signup",
		body:   credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return models.AuthSession{}, err
	}

	out := resp.AuthSession
	if resp.Session != nil && resp.Session.AccessToken != "" {
		out = *resp.Session
		if out.User.ID == "" {
			out.User = resp.AuthSession.User
		}
	}
	if out.User.ID == "" && resp.ID != "" {
		out.User = models.Identity{ID: resp.ID, Email: resp.Email}
	}
	if out.User.ID == "" {
		return models.AuthSession{}, errors.New(op + ": backend returned no user")
	}

	return out, nil
}

// SignIn exchanges a password for an access token. A 400 means the credentials did not match.
func (c *Client) SignIn(ctx context.Context, email, password string) (models.AuthSession, error) {
	const op = "storage.supabase.SignIn"

	var session models.AuthSession

	err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   authPrefix + "token",
		query:  url.Values{"grant_type": {"password"}},
		body:   credentials{Email: email, Password: password},
	}, &session)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return models.AuthSession{}, &storage.CredentialsError{Message: apiErr.Message}
		}
		return models.AuthSession{}, err
	}

	if session.AccessToken == "" {
		return models.AuthSession{}, errors.New(op + ": backend returned no access token")
	}

	return session, nil
}

func (c *Client) SignOut(ctx context.Context, token string) error {
	const op = "storage.supabase.SignOut"

	return c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   authPrefix + "logout",
		token:  token,
	}, nil)
}

// CurrentUser returns nil when the token identifies nobody.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.Identity, error) {
	const op = "storage.supabase.CurrentUser"

	if token == "" {
		return nil, nil
	}

	var id models.Identity

	err := c.get(ctx, request{
		op:    op,
		path:  authPrefix + "user",
		token: token,
	}, &id)
	if err != nil {
		if errors.Is(err, storage.ErrForbidden) {
			return nil, nil
		}
		return nil, err
	}

	if id.ID == "" {
		return nil, nil
	}

	return &id, nil
}

// GetProfile returns nil when no profile row exists.
func (c *Client) GetProfile(ctx context.Context, token, id string) (*models.User, error) {
	const op = "storage.supabase.GetProfile"

	var raw json.RawMessage

	err := c.get(ctx, request{
		op:    op,
		path:  restPrefix + "users",
		query: url.Values{"id": {eq(id)}, "select": {"*"}},
		token: token,
	}, &raw)
	if err != nil {
		return nil, err
	}

	var user models.User

	found, err := decodeOne(raw, &user)
	if err != nil {
		return nil, fmt.Errorf("%s: decode profile: %w", op, err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}

type profileRow struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

func (c *Client) UpsertProfile(ctx context.Context, token string, u models.User) error {
	const op = "storage.supabase.UpsertProfile"

	return c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   restPrefix + "users",
		token:  token,
		body:   profileRow{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
		headers: map[string]string{
			"Prefer": "resolution=merge-duplicates,return=minimal",
		},
	}, nil)
}
