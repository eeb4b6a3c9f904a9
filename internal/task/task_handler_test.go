package task_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/domain"
	"go-guardconsole/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	ListFn func(ctx context.Context, view daterange.ViewKind, date string, f task.Filter, force bool) (task.ListResponse, error)
}

func (f *fakeService) List(ctx context.Context, view daterange.ViewKind, date string, filter task.Filter, force bool) (task.ListResponse, error) {
	return f.ListFn(ctx, view, date, filter, force)
}

type allowAll struct{}

func (allowAll) Enforce(domain.EnforceRequest) (bool, error) { return true, nil }

func setupTaskRouter(svc task.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	withRole := func(c *gin.Context) {
		c.Set("role", domain.RoleAreaOfficer)
		c.Next()
	}
	task.RegisterRoutes(router.Group("/api/v1"), task.NewHandler(svc), allowAll{}, withRole)
	return router
}

func TestHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got task.Filter
		svc := &fakeService{ListFn: func(_ context.Context, view daterange.ViewKind, date string, f task.Filter, force bool) (task.ListResponse, error) {
			got = f
			assert.Equal(t, daterange.ViewWeek, view)
			assert.Equal(t, "2025-01-23", date)
			return task.ListResponse{Tasks: []task.Task{{ID: "t-1"}}}, nil
		}}

		w := httptest.NewRecorder()
		setupTaskRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks?view=WEEK&date=2025-01-23&status=DONE&guardId=g-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, task.Filter{Status: "DONE", GuardID: "g-1"}, got)
		assert.Contains(t, w.Body.String(), `"meta":{"total":1}`)
	})

	t.Run("Unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupTaskRouter(&fakeService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks?view=WEEK&date=2025-01-23&status=LOST", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
