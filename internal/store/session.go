package store

import (
	"eventsBoard/internal/models"
	"sync"
)

// Session is the state one client accumulates: who they are, what they have loaded and how
// they filter it. Each part carries its own lock; backend calls are never made while holding one.
type Session struct {
	ID         string
	Auth       *AuthState
	Events     *EventsState
	Categories *CategoriesState
}

func NewSession(id string) *Session {
	return &Session{
		ID:         id,
		Auth:       &AuthState{},
		Events:     &EventsState{},
		Categories: &CategoriesState{},
	}
}

type AuthState struct {
	mu    sync.RWMutex
	user  *models.User
	token string
}

// Set replaces the signed-in user and the access token used for backend calls.
func (a *AuthState) Set(user models.User, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = &user
	a.token = token
}

func (a *AuthState) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	a.token = ""
}

func (a *AuthState) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.token
}

// User returns a copy of the signed-in user, or nil.
func (a *AuthState) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return nil
	}

	u := *a.user
	return &u
}

func (a *AuthState) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user != nil
}

func (a *AuthState) IsAdmin() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user != nil && a.user.Role == models.RoleAdmin
}

type EventsState struct {
	mu         sync.RWMutex
	events     []models.Event
	filters    models.EventFilters
	loaded     bool
	submitting bool
	submitted  map[string]struct{}
}

func (s *EventsState) snapshot() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Event{}, s.events...)
}

func (s *EventsState) isLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func (s *EventsState) replace(events []models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]models.Event{}, events...)
	s.loaded = true
}

// invalidate forces the next read to refetch. Filters survive.
func (s *EventsState) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.loaded = false
	s.submitted = nil
}

// IsSubmitting reports whether a submission is in flight.
func (s *EventsState) IsSubmitting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.submitting
}

type CategoriesState struct {
	mu         sync.RWMutex
	categories []models.Category
	loaded     bool
}

func (s *CategoriesState) snapshot() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Category{}, s.categories...)
}

func (s *CategoriesState) isLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func (s *CategoriesState) replace(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append([]models.Category{}, categories...)
	s.loaded = true
}
