package defaults_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/defaults"
	defaultserrors "go-guardconsole/internal/defaults/errors"
	defaultsMock "go-guardconsole/internal/defaults/mock"
	"go-guardconsole/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type allowAll struct{}

func (allowAll) Enforce(domain.EnforceRequest) (bool, error) { return true, nil }

func setupDefaultsRouter(svc defaults.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	withRole := func(c *gin.Context) {
		c.Set("role", domain.RoleAreaOfficer)
		c.Next()
	}
	defaults.RegisterRoutes(router.Group("/api/v1"), defaults.NewHandler(svc), allowAll{}, withRole)
	return router
}

func TestHandler_GetCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := defaultsMock.NewMockService(ctrl)
	router := setupDefaultsRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			GetCalendar(gomock.Any(), "g-1", daterange.ViewWeek, "2025-01-23", true).
			Return(defaults.CalendarResponse{GuardID: "g-1", StartDate: "2025-01-20", EndDate: "2025-01-26"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults?view=week&date=2025-01-23&refresh=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "2025-01-20", res["data"].(map[string]any)["start_date"])
	})

	t.Run("Missing date", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults?view=WEEK", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown view", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults?view=YEAR&date=2025-01-23", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed upstream data", func(t *testing.T) {
		mockService.EXPECT().
			GetCalendar(gomock.Any(), "g-1", daterange.ViewDay, "2025-01-23", false).
			Return(defaults.CalendarResponse{}, defaultserrors.ErrMalformedDefaults)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults?view=DAY&date=2025-01-23", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHandler_GetDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := defaultsMock.NewMockService(ctrl)
	router := setupDefaultsRouter(mockService)

	t.Run("Day with defaults", func(t *testing.T) {
		mockService.EXPECT().
			GetDay(gomock.Any(), "g-1", daterange.ViewDay, "2025-01-20", false).
			Return(defaults.DayResponse{Date: "2025-01-20", HasDefault: true}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults/2025-01-20", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Empty day answers no content", func(t *testing.T) {
		mockService.EXPECT().
			GetDay(gomock.Any(), "g-1", daterange.ViewWeek, "2025-01-21", false).
			Return(defaults.DayResponse{}, defaultserrors.ErrNoDefaultsForDay)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults/2025-01-21?view=WEEK", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestHandler_GetRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := defaultsMock.NewMockService(ctrl)
	router := setupDefaultsRouter(mockService)

	t.Run("Range is not taken for a date", func(t *testing.T) {
		mockService.EXPECT().
			GetRange(gomock.Any(), "g-1", "2025-01-20", "2025-01-22", true).
			Return(defaults.CalendarResponse{GuardID: "g-1", View: defaults.ViewRange}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults/range?from=2025-01-20&to=2025-01-22&refresh=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"view":"RANGE"`)
	})

	t.Run("Missing bound", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults/range?from=2025-01-20", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
