package exportCalendar

import (
	"errors"
	"eventsBoard/internal/exporter/calendar"
	"eventsBoard/internal/http-server/handlers/event/exportCalendar/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const feed = "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"

func TestExportCalendarHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{ID: "ev-1", Title: "Jazz Night", Date: "2025-07-12", Status: models.StatusApproved},
		{ID: "ev-2", Title: "Broken", Date: "someday", Status: models.StatusApproved},
	}

	music := "music"

	writeFeed := func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(0).(io.Writer), feed)
	}

	testCases := []struct {
		name            string
		url             string
		mockSetup       func(g *mocks.EventsGetter, e *mocks.CalendarEncoder)
		expectedStatus  int
		expectedBody    string
		expectedSkipped string
	}{
		{
			name: "Success",
			url:  "/events.ics",
			mockSetup: func(g *mocks.EventsGetter, e *mocks.CalendarEncoder) {
				g.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return(events, nil)
				e.On("Encode", mock.Anything, events).Run(writeFeed).Return([]string{"ev-2"}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    feed,
			expectedSkipped: "1",
		},
		{
			name: "Filtered",
			url:  "/events.ics?category=music",
			mockSetup: func(g *mocks.EventsGetter, e *mocks.CalendarEncoder) {
				g.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{Category: &music}).
					Return(events[:1], nil)
				e.On("Encode", mock.Anything, events[:1]).Run(writeFeed).Return([]string(nil), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    feed,
			expectedSkipped: "0",
		},
		{
			name:           "Bad date filter",
			url:            "/events.ics?date_from=yesterday",
			mockSetup:      func(g *mocks.EventsGetter, e *mocks.CalendarEncoder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field DateFrom must be a YYYY-MM-DD date"}`,
		},
		{
			name: "Backend error",
			url:  "/events.ics",
			mockSetup: func(g *mocks.EventsGetter, e *mocks.CalendarEncoder) {
				g.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
		{
			name: "Encode error",
			url:  "/events.ics",
			mockSetup: func(g *mocks.EventsGetter, e *mocks.CalendarEncoder) {
				g.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return(events, nil)
				e.On("Encode", mock.Anything, events).Run(writeFeed).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to export calendar"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventsGetter(t)
			encoder := mocks.NewCalendarEncoder(t)
			tc.mockSetup(getter, encoder)

			handler := New(logger, getter, encoder)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedStatus != http.StatusOK {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				return
			}

			assert.Equal(t, ContentType, rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Header().Get("Content-Disposition"), "events.ics")
			assert.Equal(t, tc.expectedSkipped, rr.Header().Get(SkippedHeader))
			assert.Equal(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestExportWithCalendarEncoder(t *testing.T) {
	t.Parallel()

	getter := mocks.NewEventsGetter(t)
	getter.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return([]models.Event{
		{ID: "ev-1", Title: "Jazz Night", Date: "2025-07-12", Link: "https://example.com", Status: models.StatusApproved},
	}, nil)

	handler := New(slogdiscard.NewDiscardLogger(), getter, calendar.NewEncoder("example.com"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events.ics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
	assert.Contains(t, body, "UID:ev-1@example.com")
	assert.Contains(t, body, "SUMMARY:Jazz Night")
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20250712")
}

func TestExportEmptyFeed(t *testing.T) {
	t.Parallel()

	search := "no-match-xyz"

	getter := mocks.NewEventsGetter(t)
	getter.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{Search: &search}).Return([]models.Event{}, nil)

	handler := New(slogdiscard.NewDiscardLogger(), getter, calendar.NewEncoder("example.com"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/events.ics?search=no-match-xyz", nil))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, ContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, "0", rr.Header().Get(SkippedHeader))
	assert.Contains(t, rr.Body.String(), "END:VCALENDAR")
	assert.NotContains(t, rr.Body.String(), "BEGIN:VEVENT")
}
