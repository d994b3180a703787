package listEvents

import (
	"encoding/json"
	"errors"
	"eventsBoard/internal/http-server/handlers/event/listEvents/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{ID: "ev-1", Title: "Jazz Night", Category: "music", Date: "2025-07-12", Status: models.StatusApproved},
		{ID: "ev-2", Title: "Food Fair", Category: "food", Date: "2025-08-01", Status: models.StatusApproved},
	}
	stored := models.EventFilters{Search: "night", Location: "Riverside"}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Session filters",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return(events, nil)
				m.On("Filters", mock.Anything).Return(stored)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Len(t, resp.Events, 2)
				assert.Equal(t, stored, resp.Filters)
			},
		},
		{
			name: "Query overrides",
			url:  "/events?category=music&date_from=2025-07-01&search=jazz",
			mockSetup: func(m *mocks.EventsGetter) {
				override := models.FiltersPatch{Search: strPtr("jazz"), Category: strPtr("music"), DateFrom: strPtr("2025-07-01")}
				m.On("Visible", mock.Anything, mock.Anything, override).Return(events[:1], nil)
				m.On("Filters", mock.Anything).Return(stored)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				require.Len(t, resp.Events, 1)
				assert.Equal(t, "ev-1", resp.Events[0].ID)
				assert.Equal(t, models.EventFilters{
					Search:   "jazz",
					Category: "music",
					DateFrom: "2025-07-01",
					Location: "Riverside",
				}, resp.Filters)
			},
		},
		{
			name: "Empty parameter clears a stored criterion",
			url:  "/events?location=",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{Location: strPtr("")}).Return(events, nil)
				m.On("Filters", mock.Anything).Return(stored)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, models.EventFilters{Search: "night"}, resp.Filters)
			},
		},
		{
			name: "Refresh",
			url:  "/events?refresh=true",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Fetch", mock.Anything, mock.Anything).Return(events, nil).Once()
				m.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return(events, nil)
				m.On("Filters", mock.Anything).Return(models.EventFilters{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Empty list",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).Return(nil, nil)
				m.On("Filters", mock.Anything).Return(models.EventFilters{})
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","events":[],"filters":{"search":"","category":"",` +
				`"dateFrom":"","dateTo":"","location":""}}`,
		},
		{
			name:           "Bad date",
			url:            "/events?date_to=tomorrow",
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field DateTo must be a YYYY-MM-DD date"}`,
		},
		{
			name: "Refresh failure",
			url:  "/events?refresh=1",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
		{
			name: "Backend error",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Visible", mock.Anything, mock.Anything, models.FiltersPatch{}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, []models.Event{{ID: "ev-3"}}, models.EventFilters{Category: "art"})

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventsResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	require.Len(t, actualResponse.Events, 1)
	assert.Equal(t, "ev-3", actualResponse.Events[0].ID)
	assert.Equal(t, "art", actualResponse.Filters.Category)
}
