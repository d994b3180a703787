// Package session maps client session ids to their in-process state and keeps the signed-in
// identity in a Store so it survives eviction and restarts.
package session

import (
	"context"
	"errors"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"fmt"
	"github.com/google/uuid"
	"log/slog"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Record is the persisted part of a session.
type Record struct {
	UserID string
	Email  string
	Name   string
	Role   models.Role
	Token  string
}

type Store interface {
	Save(ctx context.Context, id string, rec Record, ttl time.Duration) error
	// Load returns ErrNotFound for unknown or expired ids.
	Load(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}

type entry struct {
	sess     *store.Session
	lastSeen time.Time
}

type Manager struct {
	log     *slog.Logger
	store   Store
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewManager(log *slog.Logger, st Store, idleTTL time.Duration) *Manager {
	return &Manager{
		log:      log,
		store:    st,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// New starts an anonymous session with a fresh id.
func (m *Manager) New() *store.Session {
	sess := store.NewSession(uuid.NewString())

	m.mu.Lock()
	m.sessions[sess.ID] = &entry{sess: sess, lastSeen: m.now()}
	m.mu.Unlock()

	return sess
}

// Get returns the live session for id, rebuilding it from the Store after eviction.
// Unknown ids yield ErrNotFound.
func (m *Manager) Get(ctx context.Context, id string) (*store.Session, error) {
	const op = "session.Manager.Get"

	if id == "" {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		m.mu.Unlock()
		return e.sess, nil
	}
	m.mu.Unlock()

	rec, err := m.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sess := store.NewSession(id)
	if rec.UserID != "" && rec.Token != "" {
		sess.Auth.Set(models.User{
			ID:    rec.UserID,
			Email: rec.Email,
			Name:  rec.Name,
			Role:  rec.Role,
		}, rec.Token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another request may have rebuilt it meanwhile.
	if e, ok := m.sessions[id]; ok {
		e.lastSeen = m.now()
		return e.sess, nil
	}
	m.sessions[id] = &entry{sess: sess, lastSeen: m.now()}

	m.log.Debug("session restored", slog.String("op", op), slog.String("session", id))

	return sess, nil
}

// Persist writes the session identity to the Store. Anonymous sessions are still
// recorded so their id stays valid.
func (m *Manager) Persist(ctx context.Context, sess *store.Session) error {
	const op = "session.Manager.Persist"

	rec := Record{Token: sess.Auth.Token()}
	if u := sess.Auth.User(); u != nil {
		rec.UserID = u.ID
		rec.Email = u.Email
		rec.Name = u.Name
		rec.Role = u.Role
	}

	if err := m.store.Save(ctx, sess.ID, rec, m.idleTTL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Destroy forgets the session everywhere.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("session.Manager.Destroy: %w", err)
	}

	return nil
}

// EvictIdle drops in-process state of sessions idle longer than the idle TTL and
// returns how many were dropped. Persisted records expire on their own.
func (m *Manager) EvictIdle() int {
	const op = "session.Manager.EvictIdle"

	cutoff := m.now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		m.log.Info("evicted idle sessions", slog.String("op", op), slog.Int("count", evicted))
	}

	return evicted
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// Run evicts idle sessions every interval until ctx is done. onEvict, when set, receives
// the number of live sessions after each pass.
func (m *Manager) Run(ctx context.Context, interval time.Duration, onEvict func(live int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.EvictIdle()
			if onEvict != nil {
				onEvict(m.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}
