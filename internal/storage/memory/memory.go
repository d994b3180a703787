// Package memory is an in-process backend with the same contract as the Supabase project:
// newest-first listing, server-stamped ids, admin-only moderation and password auth.
package memory

import (
	"context"
	"errors"
	"eventsBoard/internal/lib/tokens"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"strings"
	"sync"
	"time"
)

type account struct {
	user models.User
	hash []byte
}

type Storage struct {
	mu         sync.RWMutex
	events     []models.Event
	categories []models.Category
	accounts   map[string]*account
	byEmail    map[string]string
	revoked    map[string]struct{}
	tokens     *tokens.Manager
	now        func() time.Time
}

func New(tm *tokens.Manager, seed Seed) (*Storage, error) {
	s := &Storage{
		events:     append([]models.Event{}, seed.Events...),
		categories: append([]models.Category{}, seed.Categories...),
		accounts:   make(map[string]*account),
		byEmail:    make(map[string]string),
		revoked:    make(map[string]struct{}),
		tokens:     tm,
		now:        time.Now,
	}

	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("storage.memory.New: hash password: %w", err)
		}
		if u.Role == "" {
			u.Role = models.RoleUser
		}
		s.accounts[u.ID] = &account{user: u.User, hash: hash}
		s.byEmail[strings.ToLower(u.Email)] = u.ID
	}

	return s, nil
}

// ListEvents returns every event to admins and only approved ones to everyone else.
func (s *Storage) ListEvents(_ context.Context, token string) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.requireAdmin(token) == nil {
		return append([]models.Event{}, s.events...), nil
	}

	events := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.Status == models.StatusApproved {
			events = append(events, e)
		}
	}

	return events, nil
}

func (s *Storage) CreateEvent(_ context.Context, _ string, in models.EventInput) (models.Event, error) {
	event := in.ToEvent(uuid.NewString(), models.StatusPending, s.now().UTC().Format(time.RFC3339))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]models.Event{event}, s.events...)

	return event, nil
}

func (s *Storage) UpdateEventStatus(_ context.Context, token, id string, status models.EventStatus) error {
	const op = "storage.memory.UpdateEventStatus"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Status = status
		}
	}

	return nil
}

func (s *Storage) DeleteEvent(_ context.Context, token, id string) error {
	const op = "storage.memory.DeleteEvent"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept

	return nil
}

func (s *Storage) ListCategories(_ context.Context, _ string) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Category{}, s.categories...), nil
}

func (s *Storage) CreateCategory(_ context.Context, token string, in models.CategoryInput) (models.Category, error) {
	const op = "storage.memory.CreateCategory"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(token); err != nil {
		return models.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, c := range s.categories {
		if c.Slug == in.Slug {
			return models.Category{}, fmt.Errorf("%s: %w", op, storage.ErrCategoryExists)
		}
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
	}
	s.categories = append(s.categories, category)

	return category, nil
}

func (s *Storage) DeleteCategory(_ context.Context, token, id string) error {
	const op = "storage.memory.DeleteCategory"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	return nil
}

func (s *Storage) SignUp(_ context.Context, email, password string) (models.AuthSession, error) {
	const op = "storage.memory.SignUp"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("%s: hash password: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.byEmail[key]; ok {
		return models.AuthSession{}, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      models.RoleUser,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	s.accounts[user.ID] = &account{user: user, hash: hash}
	s.byEmail[key] = user.ID

	return s.issue(op, user)
}

func (s *Storage) SignIn(_ context.Context, email, password string) (models.AuthSession, error) {
	const op = "storage.memory.SignIn"

	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[s.byEmail[strings.ToLower(email)]]
	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		return models.AuthSession{}, &storage.CredentialsError{Message: "Invalid login credentials"}
	}

	return s.issue(op, acc.user)
}

func (s *Storage) SignOut(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[token] = struct{}{}

	return nil
}

func (s *Storage) CurrentUser(_ context.Context, token string) (*models.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, err := s.account(token)
	if err != nil {
		return nil, nil
	}

	return &models.Identity{ID: acc.user.ID, Email: acc.user.Email}, nil
}

func (s *Storage) GetProfile(_ context.Context, _ string, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}

	user := acc.user
	return &user, nil
}

func (s *Storage) UpsertProfile(_ context.Context, token string, u models.User) error {
	const op = "storage.memory.UpsertProfile"

	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.account(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if caller.user.ID != u.ID && caller.user.Role != models.RoleAdmin {
		return fmt.Errorf("%s: %w", op, storage.ErrForbidden)
	}

	acc, ok := s.accounts[u.ID]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrForbidden)
	}

	acc.user.Name = u.Name
	if u.Email != "" {
		acc.user.Email = u.Email
	}
	// Only admins may change roles.
	if u.Role != "" && caller.user.Role == models.RoleAdmin {
		acc.user.Role = u.Role
	}

	return nil
}

func (s *Storage) issue(op string, u models.User) (models.AuthSession, error) {
	token, err := s.tokens.Issue(models.Identity{ID: u.ID, Email: u.Email})
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.AuthSession{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		User:        models.Identity{ID: u.ID, Email: u.Email},
	}, nil
}

// account resolves a token to its account. Callers hold s.mu.
func (s *Storage) account(token string) (*account, error) {
	if token == "" {
		return nil, storage.ErrUnauthenticated
	}
	if _, ok := s.revoked[token]; ok {
		return nil, storage.ErrUnauthenticated
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, storage.ErrUnauthenticated
	}

	acc, ok := s.accounts[claims.Subject]
	if !ok {
		return nil, storage.ErrUnauthenticated
	}

	return acc, nil
}

func (s *Storage) requireAdmin(token string) error {
	acc, err := s.account(token)
	if err != nil {
		if errors.Is(err, storage.ErrUnauthenticated) {
			return storage.ErrForbidden
		}
		return err
	}
	if acc.user.Role != models.RoleAdmin {
		return storage.ErrForbidden
	}
	return nil
}
