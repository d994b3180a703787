package getFilters

import (
	"eventsBoard/internal/http-server/handlers/filters/getFilters/mocks"
	"eventsBoard/internal/lib/logger/handlers/slogdiscard"
	"eventsBoard/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetFiltersHandler(t *testing.T) {
	t.Parallel()

	getter := mocks.NewFiltersGetter(t)
	getter.On("Filters", mock.Anything).Return(models.EventFilters{Category: "music", DateFrom: "2025-07-01"})

	handler := New(slogdiscard.NewDiscardLogger(), getter)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/filters", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK","filters":{"search":"","category":"music",
		"dateFrom":"2025-07-01","dateTo":"","location":""}}`, rr.Body.String())
}
