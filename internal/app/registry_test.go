package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-guardconsole/internal/cacheadmin"
	"go-guardconsole/internal/config"
	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testModules(t *testing.T) modules {
	t.Helper()
	cfg := config.Config{
		AuthAPIURL:        "http://auth.local",
		CoreAPIURL:        "http://core.local",
		CacheBackend:      config.BackendMemory,
		CredentialBackend: config.BackendMemory,
		QueryStaleTime:    time.Minute,
		QueryGCTime:       time.Minute,
		RateLimitRPS:      100,
		RateLimitBurst:    100,
		IPRateLimitRPS:    100,
		IPRateLimitBurst:  100,
		LoginRateRPS:      100,
		LoginRateBurst:    100,
	}
	store := credential.NewMemoryStore()
	authAPI, err := httpclient.New(httpclient.Config{Name: "auth", BaseURL: cfg.AuthAPIURL}, zap.NewNop())
	require.NoError(t, err)
	coreAPI, err := httpclient.New(httpclient.Config{Name: "core", BaseURL: cfg.CoreAPIURL}, zap.NewNop())
	require.NoError(t, err)

	cache := query.NewMemoryCache()
	return modules{
		cfg:        cfg,
		store:      store,
		authAPI:    authAPI,
		coreAPI:    coreAPI,
		queries:    newQueryClient(cfg, cache, zap.NewNop()),
		cacheAdmin: cacheadmin.NewService(cache, nil, "test", zap.NewNop()),
		logger:     zap.NewNop(),
	}
}

func TestRegisterModules_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.NoError(t, registerModules(router, testModules(t)))

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/me",
		"GET /api/v1/guards/:id/defaults",
		"GET /api/v1/guards/:id/defaults/:date",
		"GET /api/v1/guards/:id/defaults/range",
		"POST /api/v1/incidents/:id/attachments",
		"GET /api/v1/clients/:id/metrics",
		"GET /api/v1/guards/:id/metrics",
		"GET /api/v1/tasks",
		"GET /api/v1/incidents",
		"POST /api/v1/rbac/enforce",
		"GET /api/v1/rbac/permissions",
		"POST /api/v1/cache/invalidate",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestRegisterModules_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.NoError(t, registerModules(router, testModules(t)))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/guards/g-1/defaults?view=WEEK&date=2025-01-21", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
