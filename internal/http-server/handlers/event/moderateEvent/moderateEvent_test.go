package moderateEvent

import (
	"errors"
	"eventsBoard/internal/http-server/handlers/event/moderateEvent/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"eventsBoard/internal/store"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModerateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks.StatusUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Approve",
			path: "/admin/events/ev-1/approve",
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, mock.Anything, "ev-1", models.StatusApproved).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","id":"ev-1","eventStatus":"approved"}`,
		},
		{
			name: "Reject",
			path: "/admin/events/ev-2/reject",
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, mock.Anything, "ev-2", models.StatusRejected).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","id":"ev-2","eventStatus":"rejected"}`,
		},
		{
			name: "Forbidden",
			path: "/admin/events/ev-1/approve",
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, mock.Anything, "ev-1", models.StatusApproved).
					Return(storage.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"admin access required"}`,
		},
		{
			name: "Invalid status",
			path: "/admin/events/ev-1/reject",
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, mock.Anything, "ev-1", models.StatusRejected).
					Return(store.ErrInvalidStatus)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event status"}`,
		},
		{
			name: "Backend error",
			path: "/admin/events/ev-1/approve",
			mockSetup: func(m *mocks.StatusUpdater) {
				m.On("UpdateStatus", mock.Anything, mock.Anything, "ev-1", models.StatusApproved).
					Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event status"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewStatusUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Post("/admin/events/{id}/approve", New(logger, mockUpdater, models.StatusApproved))
			router.Post("/admin/events/{id}/reject", New(logger, mockUpdater, models.StatusRejected))

			req, err := http.NewRequest(http.MethodPost, tc.path, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
