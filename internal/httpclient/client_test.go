package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go-guardconsole/internal/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClient(t *testing.T, name, baseURL string) *httpclient.Client {
	t.Helper()
	c, err := httpclient.New(httpclient.Config{Name: name, BaseURL: baseURL}, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestClient_GetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/guards/g-1", r.URL.Path)
		assert.Equal(t, "2025-01-20", r.URL.Query().Get("fromDate"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"Ana"}}`))
	}))
	defer srv.Close()

	c := newClient(t, httpclient.NameCore, srv.URL+"/api/")

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	err := c.Get(context.Background(), "/guards/g-1", url.Values{"fromDate": {"2025-01-20"}}, &out)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Ana", out.Data.Name)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"nope"}`))
	}))
	defer srv.Close()

	c := newClient(t, httpclient.NameCore, srv.URL)
	err := c.Get(context.Background(), "/incidents", nil, nil)

	status, ok := httpclient.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)

	var statusErr *httpclient.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.JSONEq(t, `{"message":"nope"}`, string(statusErr.Body))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := newClient(t, httpclient.NameAuth, base)
	err := c.Get(context.Background(), "/auth/me", nil, nil)
	assert.True(t, httpclient.IsNetworkError(err))
}

func TestClient_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newClient(t, httpclient.NameAuth, srv.URL)
	err := c.Post(context.Background(), "/auth/login", map[string]string{"email": "ana@example.com"}, nil)
	assert.NoError(t, err)
}

func TestNew_RejectsRelativeBaseURL(t *testing.T) {
	_, err := httpclient.New(httpclient.Config{Name: "core", BaseURL: "/api"}, zap.NewNop())
	assert.Error(t, err)
}
