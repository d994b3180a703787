package router

import (
	"bytes"
	"encoding/json"
	"eventsBoard/internal/exporter/calendar"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/lib/tokens"
	"eventsBoard/internal/metrics"
	"eventsBoard/internal/models"
	"eventsBoard/internal/session"
	"eventsBoard/internal/storage/memory"
	"eventsBoard/internal/store"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()

	tm := tokens.New("router-test-secret", time.Hour)

	seed, err := memory.DefaultSeed()
	require.NoError(t, err)

	backend, err := memory.New(tm, seed)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, reg)

	srv := httptest.NewServer(New(log, Deps{
		Events:     store.NewEventService(log, backend, m),
		Categories: store.NewCategoryService(log, backend),
		Auth:       store.NewAuthService(log, backend, tm),
		Sessions:   session.NewManager(log, session.NewMemoryStore(), time.Minute),
		Calendar:   calendar.NewEncoder("events.test"),
		Metrics:    m,
	}))
	t.Cleanup(srv.Close)

	return srv
}

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newClient(t *testing.T, srv *httptest.Server) *client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &client{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
}

func (c *client) do(method, path, body string, header http.Header) (*http.Response, []byte) {
	c.t.Helper()

	req, err := http.NewRequest(method, c.base+path, bytes.NewBufferString(body))
	require.NoError(c.t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	return resp, b
}

type eventsBody struct {
	Status  string              `json:"status"`
	Events  []models.Event      `json:"events"`
	Filters models.EventFilters `json:"filters"`
}

type authBody struct {
	Status      string      `json:"status"`
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

func (c *client) login(email, password string) authBody {
	c.t.Helper()

	resp, b := c.do(http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, nil)
	require.Equal(c.t, http.StatusOK, resp.StatusCode, string(b))

	var out authBody
	require.NoError(c.t, json.Unmarshal(b, &out))
	return out
}

func ids(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestPublicListing(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestServer(t))

	resp, b := c.do(http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Session-ID"))

	var body eventsBody
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, []string{"3", "4", "2", "5", "1"}, ids(body.Events))
	for _, e := range body.Events {
		assert.Equal(t, models.StatusApproved, e.Status)
	}

	resp, b = c.do(http.MethodGet, "/events?category=crypto", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, []string{"3", "5", "1"}, ids(body.Events))

	resp, b = c.do(http.MethodGet, "/events/6", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "pending events are not public")
	assert.JSONEq(t, `{"status":"Error","error":"event not found"}`, string(b))

	resp, _ = c.do(http.MethodGet, "/events/4", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, b = c.do(http.MethodGet, "/events/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"status":"Error","error":"event not found"}`, string(b))
}

func TestSessionFilters(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	c := newClient(t, srv)

	resp, b := c.do(http.MethodPatch, "/filters", `{"category":"crypto"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	var body eventsBody
	_, b = c.do(http.MethodGet, "/events", "", nil)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "crypto", body.Filters.Category)
	assert.Equal(t, []string{"3", "5", "1"}, ids(body.Events))

	_, b = c.do(http.MethodGet, "/events?category=", "", nil)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Len(t, body.Events, 5, "an empty parameter lifts the stored category for one request")

	_, b = c.do(http.MethodGet, "/events", "", nil)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "crypto", body.Filters.Category)

	other := newClient(t, srv)
	_, b = other.do(http.MethodGet, "/events", "", nil)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Len(t, body.Events, 5, "filters belong to one session")

	resp, _ = c.do(http.MethodDelete, "/filters", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, b = c.do(http.MethodGet, "/events", "", nil)
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Len(t, body.Events, 5)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	anon := newClient(t, srv)
	resp, b := anon.do(http.MethodGet, "/admin/events", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"status":"Error","error":"authentication required"}`, string(b))

	user := newClient(t, srv)
	user.login("user@example.com", "UserPass123!")
	resp, _ = user.do(http.MethodPost, "/admin/events/6/approve", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, b = anon.do(http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"status":"Error","error":"Invalid login credentials"}`, string(b))
}

func TestSubmitAndModerate(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	submitter := newClient(t, srv)
	resp, b := submitter.do(http.MethodPost, "/events", `{
		"title": "Rust Meetup",
		"description": "Monthly meetup",
		"category": "tech",
		"date": "2026-05-04",
		"location": {"name": "Node5", "address": "Radlicka 50", "lat": 50.07, "lng": 14.4},
		"link": "https://example.com/rust",
		"organizer": "Rust Prague"
	}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	var created struct {
		Event models.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(b, &created))
	require.NotEmpty(t, created.Event.ID)
	assert.Equal(t, models.StatusPending, created.Event.Status)

	var fetched struct {
		Event models.Event `json:"event"`
	}
	resp, b = submitter.do(http.MethodGet, "/events/"+created.Event.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	require.NoError(t, json.Unmarshal(b, &fetched))
	assert.Equal(t, created.Event, fetched.Event)

	resp, _ = newClient(t, srv).do(http.MethodGet, "/events/"+created.Event.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	admin := newClient(t, srv)
	admin.login("admin@example.com", "AdminPass123!")

	var queue eventsBody
	_, b = admin.do(http.MethodGet, "/admin/events?status=pending", "", nil)
	require.NoError(t, json.Unmarshal(b, &queue))
	assert.Equal(t, []string{created.Event.ID, "6"}, ids(queue.Events))

	resp, b = admin.do(http.MethodPost, "/admin/events/"+created.Event.ID+"/approve", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))

	resp, _ = admin.do(http.MethodDelete, "/admin/events/6", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var visible eventsBody
	_, b = submitter.do(http.MethodGet, "/events?refresh=true", "", nil)
	require.NoError(t, json.Unmarshal(b, &visible))
	assert.Contains(t, ids(visible.Events), created.Event.ID)

	_, b = admin.do(http.MethodGet, "/admin/events", "", nil)
	require.NoError(t, json.Unmarshal(b, &queue))
	assert.NotContains(t, ids(queue.Events), "6")
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	token := newClient(t, srv).login("admin@example.com", "AdminPass123!").AccessToken
	require.NotEmpty(t, token)

	api := newClient(t, srv)
	resp, b := api.do(http.MethodGet, "/auth/me", "", http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	assert.Contains(t, string(b), `"role":"admin"`)

	resp, _ = newClient(t, srv).do(http.MethodGet, "/admin/events", "",
		http.Header{"Authorization": {"Bearer not-a-token"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCalendarFeed(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestServer(t))

	resp, b := c.do(http.MethodGet, "/events.ics?category=cooking", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar"))
	assert.Contains(t, string(b), "UID:4@events.test")
	assert.Equal(t, 1, strings.Count(string(b), "BEGIN:VEVENT"))

	resp, b = c.do(http.MethodGet, "/events.ics?search=no-match-xyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar"))
	assert.Contains(t, string(b), "END:VCALENDAR")
	assert.NotContains(t, string(b), "BEGIN:VEVENT")
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	c := newClient(t, newTestServer(t))

	resp, b := c.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"OK"}`, string(b))

	c.do(http.MethodGet, "/categories", "", nil)

	resp, b = c.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), `route="/categories"`)
}
