package store

import (
	"context"
	"errors"
	"eventsBoard/internal/filter"
	"eventsBoard/internal/lib/logger/sl"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"time"
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrInvalidStatus  = errors.New("invalid event status")
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionDelete  = "delete"
)

type EventService struct {
	log      *slog.Logger
	backend  EventsBackend
	observer ModerationObserver
	now      func() time.Time
}

func NewEventService(log *slog.Logger, backend EventsBackend, observer ModerationObserver) *EventService {
	return &EventService{
		log:      log,
		backend:  backend,
		observer: observer,
		now:      time.Now,
	}
}

// Fetch reloads the session's events from the backend, newest first.
func (s *EventService) Fetch(ctx context.Context, sess *Session) ([]models.Event, error) {
	const op = "store.EventService.Fetch"

	events, err := s.backend.ListEvents(ctx, sess.Auth.Token())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess.Events.replace(events)

	s.log.Debug("events fetched", slog.String("op", op), slog.Int("count", len(events)))

	return sess.Events.snapshot(), nil
}

func (s *EventService) EnsureLoaded(ctx context.Context, sess *Session) error {
	if sess.Events.isLoaded() {
		return nil
	}

	_, err := s.Fetch(ctx, sess)
	return err
}

// Visible returns the approved events matching the session filters with override applied
// on top. The stored filters are not changed.
func (s *EventService) Visible(ctx context.Context, sess *Session, override models.FiltersPatch) ([]models.Event, error) {
	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return nil, err
	}

	criteria := s.Filters(sess).Apply(override)

	return filter.VisibleEvents(sess.Events.snapshot(), criteria), nil
}

func (s *EventService) All(ctx context.Context, sess *Session) ([]models.Event, error) {
	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return nil, err
	}

	return sess.Events.snapshot(), nil
}

func (s *EventService) ByStatus(ctx context.Context, sess *Session, status models.EventStatus) ([]models.Event, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return nil, err
	}

	return filter.ByStatus(sess.Events.snapshot(), status), nil
}

// Pending is the moderation queue.
func (s *EventService) Pending(ctx context.Context, sess *Session) ([]models.Event, error) {
	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return nil, err
	}

	return filter.Pending(sess.Events.snapshot()), nil
}

// GetByID looks the event up in the session cache. Admins see any status; everyone else
// sees approved events and the ones this session submitted.
func (s *EventService) GetByID(ctx context.Context, sess *Session, id string) (models.Event, error) {
	const op = "store.EventService.GetByID"

	if err := s.EnsureLoaded(ctx, sess); err != nil {
		return models.Event{}, err
	}

	admin := sess.Auth.IsAdmin()

	sess.Events.mu.RLock()
	defer sess.Events.mu.RUnlock()

	for _, e := range sess.Events.events {
		if e.ID != id {
			continue
		}
		if _, own := sess.Events.submitted[id]; admin || own || e.Status == models.StatusApproved {
			return e, nil
		}
		break
	}

	return models.Event{}, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
}

// Submit creates the event on the backend and, once it is accepted, puts it at the head
// of the session cache. The cache is loaded first so a later lookup does not refetch it
// away. Only one submission per session may be in flight.
func (s *EventService) Submit(ctx context.Context, sess *Session, in models.EventInput) (models.Event, error) {
	const op = "store.EventService.Submit"

	log := s.log.With(slog.String("op", op), slog.String("session", sess.ID))

	state := sess.Events

	state.mu.Lock()
	if state.submitting {
		state.mu.Unlock()
		return models.Event{}, ErrSubmitInFlight
	}
	state.submitting = true
	state.mu.Unlock()

	defer func() {
		state.mu.Lock()
		state.submitting = false
		state.mu.Unlock()
	}()

	if err := s.EnsureLoaded(ctx, sess); err != nil {
		log.Error("failed to load events before submission", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.backend.CreateEvent(ctx, sess.Auth.Token(), in)
	if err != nil {
		log.Error("backend rejected submission", sl.Err(err))
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if created.Status == "" {
		created.Status = models.StatusPending
	}
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.CreatedAt == "" {
		created.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}

	state.mu.Lock()
	state.events = append([]models.Event{created}, state.events...)
	if state.submitted == nil {
		state.submitted = make(map[string]struct{})
	}
	state.submitted[created.ID] = struct{}{}
	state.mu.Unlock()

	log.Info("event submitted", slog.String("id", created.ID))

	return created, nil
}

func (s *EventService) Approve(ctx context.Context, sess *Session, id string) error {
	return s.UpdateStatus(ctx, sess, id, models.StatusApproved)
}

func (s *EventService) Reject(ctx context.Context, sess *Session, id string) error {
	return s.UpdateStatus(ctx, sess, id, models.StatusRejected)
}

// UpdateStatus overwrites the status on the backend first and mirrors it into the cache
// only when the backend accepted it. Ids missing from the cache are ignored locally.
func (s *EventService) UpdateStatus(ctx context.Context, sess *Session, id string, status models.EventStatus) (err error) {
	const op = "store.EventService.UpdateStatus"

	if !status.Valid() {
		return ErrInvalidStatus
	}

	defer func() { s.observe(actionFor(status), err) }()

	if err = s.backend.UpdateEventStatus(ctx, sess.Auth.Token(), id, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	state := sess.Events
	state.mu.Lock()
	for i := range state.events {
		if state.events[i].ID == id {
			state.events[i].Status = status
		}
	}
	state.mu.Unlock()

	s.log.Info("event status updated",
		slog.String("op", op),
		slog.String("id", id),
		slog.String("status", string(status)),
	)

	return nil
}

func (s *EventService) Delete(ctx context.Context, sess *Session, id string) (err error) {
	const op = "store.EventService.Delete"

	defer func() { s.observe(ActionDelete, err) }()

	if err = s.backend.DeleteEvent(ctx, sess.Auth.Token(), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	state := sess.Events
	state.mu.Lock()
	kept := make([]models.Event, 0, len(state.events))
	for _, e := range state.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	state.events = kept
	state.mu.Unlock()

	s.log.Info("event deleted", slog.String("op", op), slog.String("id", id))

	return nil
}

func (s *EventService) Filters(sess *Session) models.EventFilters {
	sess.Events.mu.RLock()
	defer sess.Events.mu.RUnlock()

	return sess.Events.filters
}

// SetFilters applies a partial update to the session criteria and returns the result.
func (s *EventService) SetFilters(sess *Session, patch models.FiltersPatch) models.EventFilters {
	sess.Events.mu.Lock()
	defer sess.Events.mu.Unlock()

	sess.Events.filters = sess.Events.filters.Apply(patch)

	return sess.Events.filters
}

func (s *EventService) ClearFilters(sess *Session) {
	sess.Events.mu.Lock()
	defer sess.Events.mu.Unlock()

	sess.Events.filters = models.EventFilters{}
}

func (s *EventService) observe(action string, err error) {
	if s.observer != nil {
		s.observer.ObserveModeration(action, err)
	}
}

func actionFor(status models.EventStatus) string {
	switch status {
	case models.StatusApproved:
		return ActionApprove
	case models.StatusRejected:
		return ActionReject
	}
	return string(status)
}
