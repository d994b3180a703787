package me

import (
	"errors"
	"eventsBoard/internal/http-server/handlers/auth/me/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.AuthChecker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Signed in",
			mockSetup: func(m *mocks.AuthChecker) {
				m.On("CheckAuth", mock.Anything, mock.Anything).Return(&models.User{
					ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: models.RoleUser,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","user":{"id":"u-1","name":"Ada","email":"ada@example.com",
				"role":"user","created_at":""}}`,
		},
		{
			name: "Anonymous",
			mockSetup: func(m *mocks.AuthChecker) {
				m.On("CheckAuth", mock.Anything, mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","user":null}`,
		},
		{
			name: "Backend error",
			mockSetup: func(m *mocks.AuthChecker) {
				m.On("CheckAuth", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check authentication"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checker := mocks.NewAuthChecker(t)
			tc.mockSetup(checker)

			rr := httptest.NewRecorder()
			New(logger, checker).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
