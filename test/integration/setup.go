// Package integration provides helpers and integration tests for the flight booking client.
// Integration tests drive the full stack: HTTP handlers, use cases, the API
// client and the session, against a fake of the remote booking service.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-booking/flight-booking-client/internal/adapter/http"
	"github.com/flight-booking/flight-booking-client/internal/adapter/http/middleware"
	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/apiclient"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
	"github.com/flight-booking/flight-booking-client/internal/ticket"
	"github.com/flight-booking/flight-booking-client/internal/usecase"
	"github.com/flight-booking/flight-booking-client/test/mock"
	"github.com/flight-booking/flight-booking-client/test/testutil"
)

// Now is the fixed instant the test clock starts at. Fixture flights on
// 2025-12-20 are upcoming, the booking on 2025-12-10 is completed.
const Now = "2025-12-15T08:00:00Z"

// TestServer wraps an Echo instance and the stateful parts of the client.
type TestServer struct {
	Echo      *echo.Echo
	API       *mock.API
	Store     *session.MemoryStore
	Session   *session.Context
	Navigator *navigation.Navigator
	Clock     *timeutil.MockClock
	Token     string
}

// NewTestServer starts a fake booking API loaded with the testdata fixtures
// and wires the client against it. The fake is closed with the test.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	clock := timeutil.NewMockClockFromString(Now)
	token := testutil.AccessToken(t, "ann", clock.Now().Add(time.Hour))

	api := mock.NewAPI(token).
		WithFlights(testutil.LoadTestJSON(t, "flights.json")).
		WithBookings(testutil.LoadTestJSON(t, "bookings.json")).
		WithPendingUsers(testutil.LoadTestJSON(t, "pending_users.json"))
	baseURL := api.Start()
	t.Cleanup(api.Close)

	log := logger.Nop()
	store := session.NewMemoryStore()
	sess := session.NewContext(store, log)
	require.NoError(t, sess.Init(context.Background()))

	nav := navigation.NewNavigator(log)
	client, err := apiclient.New(baseURL, 5*time.Second, sess, nav, apiclient.WithLogger(log))
	require.NoError(t, err)

	display := timeutil.UTCDisplay()
	renderer := ticket.MustNewRenderer(display)
	catalog := usecase.NewCatalogUseCase(client, nav, display, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)

	handler := httpAdapter.NewHandler(httpAdapter.UseCases{
		Auth:         usecase.NewAuthUseCase(client, sess, nav, log),
		Catalog:      catalog,
		Booking:      usecase.NewBookingUseCase(client, catalog, nav, display, log),
		Payment:      usecase.NewPaymentUseCase(client, client, nav, display, nil, log),
		Confirmation: usecase.NewConfirmationUseCase(client, nav, clock, display, renderer, log),
		Trips:        usecase.NewTripsUseCase(client, nav, clock, display, renderer, log),
		Admin:        usecase.NewAdminUseCase(client, nav, display, log),
	})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:      e,
		API:       api,
		Store:     store,
		Session:   sess,
		Navigator: nav,
		Clock:     clock,
		Token:     token,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	return ts.DoWithHeader(req, "", "")
}

// DoWithHeader executes a test request with one extra header set.
func (ts *TestServer) DoWithHeader(req Request, key, value string) Response {
	bodyReader := bytes.NewReader(nil)
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if key != "" {
		httpReq.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get is shorthand for a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Post is shorthand for a POST request.
func (ts *TestServer) Post(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put is shorthand for a PUT request.
func (ts *TestServer) Put(path string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: path, Body: body})
}

// Login signs in with the fake's accepted password and fails the test
// unless the client navigates to the dashboard.
func (ts *TestServer) Login(t *testing.T) {
	t.Helper()
	resp := ts.Post("/api/v1/login", map[string]string{"username": "ann", "password": "secret"})
	require.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	require.Equal(t, navigation.PathDashboard, resp.Location())
}

// Location returns the navigation target of a 303 answer.
func (r *Response) Location() string {
	return r.Headers.Get(echo.HeaderLocation)
}

// Decode parses the response body into out.
func (r *Response) Decode(t *testing.T, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, out), string(r.Body))
}

// Navigation parses a 303 body.
func (r *Response) Navigation(t *testing.T) response.NavigationResponse {
	t.Helper()
	var nav response.NavigationResponse
	r.Decode(t, &nav)
	return nav
}

// Error parses an error body.
func (r *Response) Error(t *testing.T) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	r.Decode(t, &detail)
	return detail
}
