package listCategories

import (
	"errors"
	"eventsBoard/internal/http-server/handlers/category/listCategories/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.CategoryLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.CategoryLister) {
				m.On("List", mock.Anything, mock.Anything).Return([]models.Category{
					{ID: "1", Name: "Art", Slug: "art", Color: "#ff00aa"},
					{ID: "2", Name: "Music", Slug: "music", Color: "#3366ff"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","categories":[
				{"id":"1","name":"Art","slug":"art","description":"","color":"#ff00aa"},
				{"id":"2","name":"Music","slug":"music","description":"","color":"#3366ff"}]}`,
		},
		{
			name: "Empty",
			mockSetup: func(m *mocks.CategoryLister) {
				m.On("List", mock.Anything, mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","categories":[]}`,
		},
		{
			name: "Backend error",
			mockSetup: func(m *mocks.CategoryLister) {
				m.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get categories"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewCategoryLister(t)
			tc.mockSetup(lister)

			handler := New(logger, lister)

			req, err := http.NewRequest(http.MethodGet, "/categories", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
