package createCategory

import (
	"bytes"
	"errors"
	"eventsBoard/internal/http-server/handlers/category/createCategory/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"eventsBoard/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	input := models.CategoryInput{Name: "Theatre", Slug: "theatre", Description: "Plays", Color: "#aa3300"}
	body := `{"name":"Theatre","slug":"theatre","description":"Plays","color":"#aa3300"}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.CategoryCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: body,
			mockSetup: func(m *mocks.CategoryCreator) {
				m.On("Create", mock.Anything, mock.Anything, input).Return(models.Category{
					ID: "c-9", Name: "Theatre", Slug: "theatre", Description: "Plays", Color: "#aa3300",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","category":{"id":"c-9","name":"Theatre","slug":"theatre",
				"description":"Plays","color":"#aa3300"}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.CategoryCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing name and slug",
			requestBody:    `{"color":"#fff"}`,
			mockSetup:      func(m *mocks.CategoryCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Name is a required field")
				assert.Contains(t, body, "field Slug is a required field")
			},
		},
		{
			name:           "Bad color",
			requestBody:    `{"name":"Theatre","slug":"theatre","color":"red"}`,
			mockSetup:      func(m *mocks.CategoryCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Color is not valid"}`,
		},
		{
			name:        "Duplicate slug",
			requestBody: body,
			mockSetup: func(m *mocks.CategoryCreator) {
				m.On("Create", mock.Anything, mock.Anything, input).Return(models.Category{}, storage.ErrCategoryExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"category already exists"}`,
		},
		{
			name:        "Forbidden",
			requestBody: body,
			mockSetup: func(m *mocks.CategoryCreator) {
				m.On("Create", mock.Anything, mock.Anything, input).Return(models.Category{}, storage.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"admin access required"}`,
		},
		{
			name:        "Backend error",
			requestBody: body,
			mockSetup: func(m *mocks.CategoryCreator) {
				m.On("Create", mock.Anything, mock.Anything, input).Return(models.Category{}, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create category"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewCategoryCreator(t)
			tc.mockSetup(creator)

			handler := New(logger, creator)

			req, err := http.NewRequest(http.MethodPost, "/admin/categories", bytes.NewBufferString(tc.requestBody))
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
