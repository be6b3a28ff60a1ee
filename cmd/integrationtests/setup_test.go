package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	booking "shareit/internal/bookingService"
	item "shareit/internal/itemService"
	"shareit/internal/repository"
	request "shareit/internal/requestService"
	"shareit/internal/server"
	user "shareit/internal/userService"
	"shareit/services/gateway/client"
	"shareit/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testClock is the server's time source; tests move it forward to finish bookings
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// testEnv wires gateway -> HTTP -> server -> SQLite the same way the binaries do
type testEnv struct {
	gateway *gin.Engine
	clock   *testClock
}

// SetupTestEnv starts a server backed by a fresh SQLite database and a gateway forwarding to it.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.Open(context.Background(), repository.DriverSQLite, filepath.Join(t.TempDir(), "shareit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := &testClock{now: time.Now().UTC()}
	router := server.SetupRouter(server.Services{
		Users:    user.NewUserService(store),
		Items:    item.NewItemService(store).WithClock(clock.Now),
		Bookings: booking.NewBookingService(store).WithClock(clock.Now),
		Requests: request.NewRequestService(store).WithClock(clock.Now),
	})
	backend := httptest.NewServer(router)
	t.Cleanup(backend.Close)

	serverClient := client.NewServerClient(backend.URL, 5*time.Second, client.BreakerSettings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 5,
	})
	gateway, err := server.SetupGatewayRouter(serverClient, server.GatewaySettings{})
	require.NoError(t, err)

	return &testEnv{gateway: gateway, clock: clock}
}

// Do sends body (a struct, raw string or nil) through the gateway as userID; zero sends no user header.
func (e *testEnv) Do(t *testing.T, method, url string, userID int64, body any) (int, envelope) {
	t.Helper()

	var raw []byte
	switch v := body.(type) {
	case nil:
	case string:
		raw = []byte(v)
	default:
		var err error
		raw, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(utils.SharerUserIDHeader, strconv.FormatInt(userID, 10))
	}
	w := httptest.NewRecorder()
	e.gateway.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w.Code, resp
}

// MustDo is Do that also requires the expected status and decodes data into out when given.
func (e *testEnv) MustDo(t *testing.T, wantStatus int, method, url string, userID int64, body, out any) {
	t.Helper()
	status, resp := e.Do(t, method, url, userID, body)
	require.Equal(t, wantStatus, status, "%s %s: %+v", method, url, resp)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

type idOnly struct {
	ID int64 `json:"id"`
}

func (e *testEnv) CreateUser(t *testing.T, name string) int64 {
	t.Helper()
	var u idOnly
	e.MustDo(t, http.StatusCreated, http.MethodPost, "/users", 0,
		map[string]string{"name": name, "email": name + "@example.com"}, &u)
	return u.ID
}

func (e *testEnv) CreateItem(t *testing.T, ownerID int64, name, description string) int64 {
	t.Helper()
	var it idOnly
	e.MustDo(t, http.StatusCreated, http.MethodPost, "/items", ownerID,
		map[string]any{"name": name, "description": description, "available": true}, &it)
	return it.ID
}

func (e *testEnv) CreateBooking(t *testing.T, bookerID, itemID int64, start, end time.Time) int64 {
	t.Helper()
	var b idOnly
	e.MustDo(t, http.StatusCreated, http.MethodPost, "/bookings", bookerID,
		map[string]any{"itemId": itemID, "start": start, "end": end}, &b)
	return b.ID
}
