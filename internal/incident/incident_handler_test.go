package incident_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/domain"
	"go-guardconsole/internal/incident"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	got        incident.Filter
	incidentID string
	upload     incident.Upload
}

func (f *fakeService) AttachFile(_ context.Context, incidentID string, u incident.Upload) (incident.Attachment, error) {
	f.incidentID = incidentID
	f.upload = u
	return incident.Attachment{ID: "a-1", IncidentID: incidentID, Filename: u.Filename}, nil
}

func (f *fakeService) List(_ context.Context, _ daterange.ViewKind, _ string, filter incident.Filter, _ bool) (incident.ListResponse, error) {
	f.got = filter
	return incident.ListResponse{Incidents: []incident.Incident{}}, nil
}

type clientOnly struct{}

func (clientOnly) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Role == domain.RoleClient, nil
}

func setupIncidentRouter(svc incident.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	withRole := func(c *gin.Context) {
		c.Set("role", domain.RoleClient)
		c.Next()
	}
	incident.RegisterRoutes(router.Group("/api/v1"), incident.NewHandler(svc), clientOnly{}, withRole)
	return router
}

func TestHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &fakeService{}
		w := httptest.NewRecorder()
		setupIncidentRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/incidents?view=DAY&date=2025-02-10&severity=HIGH", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "HIGH", svc.got.Severity)
	})

	t.Run("Bad view", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupIncidentRouter(&fakeService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/incidents?view=YEAR&date=2025-02-10", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
