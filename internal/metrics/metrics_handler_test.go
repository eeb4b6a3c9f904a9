package metrics_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/domain"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	gotSubject metrics.Subject
	gotView    daterange.ViewKind
	err        error
}

func (f *fakeService) GetSummary(_ context.Context, subject metrics.Subject, id string, view daterange.ViewKind, date string, force bool) (metrics.SummaryResponse, error) {
	f.gotSubject = subject
	f.gotView = view
	if f.err != nil {
		return metrics.SummaryResponse{}, f.err
	}
	return metrics.SummaryResponse{Subject: string(subject), ID: id, Metrics: metrics.Metrics{Total: 6}}, nil
}

type roleEnforcer struct{}

func (roleEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Role == domain.RoleClient, nil
}

func setupMetricsRouter(svc metrics.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	withRole := func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
	metrics.RegisterRoutes(router.Group("/api/v1"), metrics.NewHandler(svc), roleEnforcer{}, withRole)
	return router
}

func TestHandler_Summary(t *testing.T) {
	t.Run("client metrics", func(t *testing.T) {
		svc := &fakeService{}
		w := httptest.NewRecorder()
		setupMetricsRouter(svc, domain.RoleClient).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clients/c-1/metrics?view=month&date=2025-01-23", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, metrics.SubjectClient, svc.gotSubject)
		assert.Equal(t, daterange.ViewMonth, svc.gotView)

		var res struct {
			Data metrics.SummaryResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, 6, res.Data.Metrics.Total)
	})

	t.Run("guard metrics", func(t *testing.T) {
		svc := &fakeService{}
		w := httptest.NewRecorder()
		setupMetricsRouter(svc, domain.RoleClient).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/metrics?view=DAY&date=2025-01-23", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, metrics.SubjectGuard, svc.gotSubject)
	})

	t.Run("forbidden role", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupMetricsRouter(&fakeService{}, "GUEST").
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/metrics?view=DAY&date=2025-01-23", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing view", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupMetricsRouter(&fakeService{}, domain.RoleClient).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/metrics?date=2025-01-23", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream rate limit", func(t *testing.T) {
		svc := &fakeService{err: &httpclient.StatusError{Status: http.StatusTooManyRequests}}
		w := httptest.NewRecorder()
		setupMetricsRouter(svc, domain.RoleClient).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/clients/c-1/metrics?view=WEEK&date=2025-01-23", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	})
}
