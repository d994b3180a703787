package store

import (
	"context"
	"eventsBoard/internal/models"
)

// EventsBackend persists events. token is the caller's access token; empty means anonymous.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsBackend
type EventsBackend interface {
	ListEvents(ctx context.Context, token string) ([]models.Event, error)
	CreateEvent(ctx context.Context, token string, in models.EventInput) (models.Event, error)
	UpdateEventStatus(ctx context.Context, token, id string, status models.EventStatus) error
	DeleteEvent(ctx context.Context, token, id string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesBackend
type CategoriesBackend interface {
	ListCategories(ctx context.Context, token string) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, in models.CategoryInput) (models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthBackend
type AuthBackend interface {
	SignUp(ctx context.Context, email, password string) (models.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (models.AuthSession, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.Identity, error)
	GetProfile(ctx context.Context, token, id string) (*models.User, error)
	UpsertProfile(ctx context.Context, token string, u models.User) error
}

// ModerationObserver is told about every approve, reject and delete attempt.
type ModerationObserver interface {
	ObserveModeration(action string, err error)
}
