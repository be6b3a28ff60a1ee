package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"shareit/utils"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
)

func testSettings() BreakerSettings {
	return BreakerSettings{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 3}
}

func TestServerClient_ForwardsHeadersAndBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/items", r.URL.Path)
		require.Equal(t, "x", r.URL.Query().Get("q"))
		require.Equal(t, "7", r.Header.Get(utils.SharerUserIDHeader))
		require.Equal(t, "req-1", r.Header.Get(utils.RequestIDHeader))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"name":"Drill"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer backend.Close()

	c := NewServerClient(backend.URL+"/", time.Second, testSettings())
	resp, err := c.Forward(context.Background(), ForwardRequest{
		Method:    http.MethodPost,
		Path:      "/items",
		Query:     url.Values{"q": {"x"}},
		UserID:    "7",
		RequestID: "req-1",
		Body:      []byte(`{"name":"Drill"}`),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "application/json", resp.ContentType)
	require.JSONEq(t, `{"id":1}`, string(resp.Body))
}

func TestServerClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()

	c := NewServerClient(backend.URL, time.Second, testSettings())
	for i := 0; i < 5; i++ {
		resp, err := c.Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/users/1"})
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "application/json; charset=utf-8", resp.ContentType)
	}
	require.Equal(t, int32(5), calls.Load())
}

func TestServerClient_BreakerOpensAfterServerErrors(t *testing.T) {
	var calls atomic.Int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500}`))
	}))
	defer backend.Close()

	c := NewServerClient(backend.URL, time.Second, testSettings())

	// 5xx answers are relayed while they count against the breaker.
	for i := 0; i < 3; i++ {
		resp, err := c.Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/users"})
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.JSONEq(t, `{"status":500}`, string(resp.Body))
	}

	_, err := c.Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/users"})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.Equal(t, int32(3), calls.Load())
}

func TestServerClient_UnreachableServer(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	addr := backend.URL
	backend.Close()

	c := NewServerClient(addr, time.Second, testSettings())
	resp, err := c.Forward(context.Background(), ForwardRequest{Method: http.MethodGet, Path: "/users"})
	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "GET /users")
}
