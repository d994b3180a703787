package supabase

import (
	"context"
	"eventsBoard/internal/models"
	"net/http"
	"net/url"
	"time"
)

// ListEvents returns every event the token may read, newest first.
func (c *Client) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	const op = "storage.supabase.ListEvents"

	var events []models.Event

	err := c.get(ctx, request{
		op:    op,
		path:  restPrefix + "events",
		query: url.Values{"select": {"*"}, "order": {"created_at.desc"}},
		token: token,
	}, &events)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []models.Event{}
	}

	return events, nil
}

// CreateEvent inserts a pending row whose id and timestamp are chosen here. The insert asks
// for no representation: a pending row is not readable by its submitter under the select
// policy, so RETURNING would fail the whole statement.
func (c *Client) CreateEvent(ctx context.Context, token string, in models.EventInput) (models.Event, error) {
	const op = "storage.supabase.CreateEvent"

	event := in.ToEvent(c.newID(), models.StatusPending, c.now().UTC().Format(time.RFC3339))

	err := c.do(ctx, request{
		op:      op,
		method:  http.MethodPost,
		path:    restPrefix + "events",
		token:   token,
		body:    event,
		headers: map[string]string{"Prefer": "return=minimal"},
	}, nil)
	if err != nil {
		return models.Event{}, err
	}

	return event, nil
}

func (c *Client) UpdateEventStatus(ctx context.Context, token, id string, status models.EventStatus) error {
	const op = "storage.supabase.UpdateEventStatus"

	return c.do(ctx, request{
		op:      op,
		method:  http.MethodPatch,
		path:    restPrefix + "events",
		query:   url.Values{"id": {eq(id)}},
		token:   token,
		body:    map[string]models.EventStatus{"status": status},
		headers: map[string]string{"Prefer": "return=minimal"},
	}, nil)
}

// DeleteEvent is idempotent: deleting an absent id is not an error.
func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	const op = "storage.supabase.DeleteEvent"

	return c.do(ctx, request{
		op:     op,
		method: http.MethodDelete,
		path:   restPrefix + "events",
		query:  url.Values{"id": {eq(id)}},
		token:  token,
	}, nil)
}
