package session

import (
	"context"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newManager(t *testing.T) (*Manager, *MemoryStore, *clock) {
	t.Helper()

	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}

	st := NewMemoryStore()
	st.now = c.now

	m := NewManager(slogdiscard.NewDiscardLogger(), st, 30*time.Minute)
	m.now = c.now

	return m, st, c
}

func TestManager_NewAndGet(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t)
	ctx := context.Background()

	sess := m.New()
	require.NotEmpty(t, sess.ID)

	got, err := m.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = m.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_EvictIdle(t *testing.T) {
	t.Parallel()

	m, _, c := newManager(t)
	ctx := context.Background()

	active := m.New()
	m.New()

	c.advance(10 * time.Minute)
	_, err := m.Get(ctx, active.ID)
	require.NoError(t, err)

	c.advance(25 * time.Minute)
	assert.Equal(t, 1, m.EvictIdle(), "only the untouched session is idle")
	assert.Equal(t, 1, m.Len())

	c.advance(10 * time.Minute)
	assert.Equal(t, 1, m.EvictIdle())
	assert.Equal(t, 0, m.Len())
}

func TestManager_RestoreFromStore(t *testing.T) {
	t.Parallel()

	m, st, c := newManager(t)
	ctx := context.Background()

	sess := m.New()
	sess.Auth.Set(models.User{ID: "0", Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin}, "tok")
	require.NoError(t, m.Persist(ctx, sess))

	// A second process sharing the store.
	other := NewManager(slogdiscard.NewDiscardLogger(), st, 30*time.Minute)
	other.now = c.now

	restored, err := other.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.NotSame(t, sess, restored)
	assert.True(t, restored.Auth.IsAdmin())
	assert.Equal(t, "tok", restored.Auth.Token())
	assert.Equal(t, "Admin", restored.Auth.User().Name)

	again, err := other.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, restored, again)
}

func TestManager_RecordExpires(t *testing.T) {
	t.Parallel()

	m, _, c := newManager(t)
	ctx := context.Background()

	sess := m.New()
	require.NoError(t, m.Persist(ctx, sess))

	c.advance(31 * time.Minute)
	m.EvictIdle()

	_, err := m.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_AnonymousPersist(t *testing.T) {
	t.Parallel()

	m, _, _ := newManager(t)
	ctx := context.Background()

	sess := m.New()
	require.NoError(t, m.Persist(ctx, sess))
	require.NoError(t, m.Destroy(ctx, sess.ID))
	assert.Equal(t, 0, m.Len())

	_, err := m.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_Run(t *testing.T) {
	t.Parallel()

	m := NewManager(slogdiscard.NewDiscardLogger(), NewMemoryStore(), time.Nanosecond)
	m.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	passes := make(chan int, 8)
	go m.Run(ctx, 5*time.Millisecond, func(live int) {
		select {
		case passes <- live:
		default:
		}
	})

	select {
	case live := <-passes:
		assert.Equal(t, 0, live)
	case <-time.After(time.Second):
		t.Fatal("eviction loop never ran")
	}
}
