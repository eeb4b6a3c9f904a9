package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-guardconsole/internal/auth"
	"go-guardconsole/internal/credential"
	credentialMock "go-guardconsole/internal/credential/mock"
	"go-guardconsole/internal/middleware"
	"go-guardconsole/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "s3cret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newSessionRouter(store credential.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session())
	r.GET("/private", middleware.SessionAuth(store, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
			"ctx_uid": contextutil.GetUserID(c.Request.Context()),
		})
	})
	r.GET("/redirect", func(c *gin.Context) {
		contextutil.Redirect(c.Request.Context(), "/login")
		c.Status(http.StatusUnauthorized)
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	store := credential.NewMemoryStore()
	sessionCtx := contextutil.WithSessionID(context.Background(), "sid-1")
	require.NoError(t, store.Set(sessionCtx, credential.KeyToken, signed(t, jwt.MapClaims{
		"user_id": "u-1",
		"role":    "AREA_OFFICER",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})))

	router := newSessionRouter(store)

	t.Run("cookie session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "sid-1"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"AREA_OFFICER"`)
		assert.Contains(t, w.Body.String(), `"ctx_uid":"u-1"`)
	})

	t.Run("header session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeader, "sid-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("session without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeader, "sid-unknown")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("legacy key is honoured", func(t *testing.T) {
		legacyCtx := contextutil.WithSessionID(context.Background(), "sid-legacy")
		require.NoError(t, store.Set(legacyCtx, credential.KeyAccessToken, signed(t, jwt.MapClaims{"sub": "u-2", "role": "CLIENT"})))

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeader, "sid-legacy")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u-2"`)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCtx := contextutil.WithSessionID(context.Background(), "sid-expired")
		require.NoError(t, store.Set(expiredCtx, credential.KeyToken, signed(t, jwt.MapClaims{
			"user_id": "u-3",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})))

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeader, "sid-expired")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})
}

func TestSessionAuth_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := credentialMock.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), credential.KeyToken).Return("", false, errors.New("redis down"))

	router := newSessionRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(middleware.SessionHeader, "sid-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSession_RedirectHook(t *testing.T) {
	router := newSessionRouter(credential.NewMemoryStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/redirect", nil))

	assert.Equal(t, "/login", w.Header().Get(middleware.RedirectHeader))
}

func TestSessionAuth_UserRateLimitSpansSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := credential.NewMemoryStore()
	for _, sid := range []string{"sid-a", "sid-b"} {
		ctx := contextutil.WithSessionID(context.Background(), sid)
		require.NoError(t, store.Set(ctx, credential.KeyToken, signed(t, jwt.MapClaims{"user_id": "u-1", "role": "CLIENT"})))
	}
	otherCtx := contextutil.WithSessionID(context.Background(), "sid-other")
	require.NoError(t, store.Set(otherCtx, credential.KeyToken, signed(t, jwt.MapClaims{"user_id": "u-2", "role": "CLIENT"})))

	limiter := middleware.NewKeyedRateLimiter(0, 1)
	r := gin.New()
	r.Use(middleware.Session())
	r.GET("/private", middleware.SessionAuth(store, testSecret, middleware.WithUserRateLimit(limiter)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(sid string) int {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set(middleware.SessionHeader, sid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("sid-a"))
	// a second session of the same user shares the bucket
	assert.Equal(t, http.StatusTooManyRequests, call("sid-b"))
	assert.Equal(t, http.StatusOK, call("sid-other"))
	// unknown sessions are rejected before any bucket is touched
	assert.Equal(t, http.StatusUnauthorized, call("sid-forged"))
	assert.Equal(t, 2, limiter.Len())
}
