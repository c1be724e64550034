// Package mock provides test doubles for the flight booking client.
// API is a fake of the remote booking service, served over real HTTP so the
// client, its interceptors and the views are exercised end to end.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Endpoint names used to configure and inspect the fake.
const (
	EndpointRegister       = "register"
	EndpointLogin          = "login"
	EndpointFlights        = "flights"
	EndpointFlight         = "flight"
	EndpointBookings       = "bookings"
	EndpointCreateBooking  = "create_booking"
	EndpointPaymentIntent  = "payment_intent"
	EndpointPaymentConfirm = "payment_confirm"
	EndpointPendingUsers   = "pending_users"
	EndpointReviewUser     = "review_user"
)

// Failure is a canned error response.
type Failure struct {
	Status int
	Body   string
}

// Call is one recorded request.
type Call struct {
	Path      string
	Token     string
	RequestID string
	Body      json.RawMessage
}

// API is a configurable fake of the booking service.
type API struct {
	mu           sync.Mutex
	token        string
	flights      json.RawMessage
	bookings     json.RawMessage
	pendingUsers json.RawMessage
	failures     map[string]Failure
	delays       map[string]time.Duration
	calls        map[string][]Call
	nextBooking  int

	server *httptest.Server
}

// NewAPI creates a fake that issues token on login.
// The fake is configured using the builder pattern methods.
func NewAPI(token string) *API {
	return &API{
		token:        token,
		flights:      json.RawMessage(`[]`),
		bookings:     json.RawMessage(`[]`),
		pendingUsers: json.RawMessage(`[]`),
		failures:     make(map[string]Failure),
		delays:       make(map[string]time.Duration),
		calls:        make(map[string][]Call),
		nextBooking:  100,
	}
}

// WithFlights sets the catalog, in wire format.
func (a *API) WithFlights(data []byte) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flights = data
	return a
}

// WithBookings sets the booking list, in wire format.
func (a *API) WithBookings(data []byte) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bookings = data
	return a
}

// WithPendingUsers sets the review queue, in wire format.
func (a *API) WithPendingUsers(data []byte) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pendingUsers = data
	return a
}

// WithFailure makes endpoint answer status with body until cleared.
func (a *API) WithFailure(endpoint string, status int, body string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[endpoint] = Failure{Status: status, Body: body}
	return a
}

// ClearFailure restores normal answers for endpoint.
func (a *API) ClearFailure(endpoint string) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.failures, endpoint)
	return a
}

// WithDelay makes endpoint wait before answering.
// This is useful for testing in-flight behaviour.
func (a *API) WithDelay(endpoint string, d time.Duration) *API {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delays[endpoint] = d
	return a
}

// Start serves the fake and returns its base URL, ending in "/api/".
func (a *API) Start() string {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := e.Group("/api")
	api.POST("/auth/register/", a.handle(EndpointRegister, false, a.register))
	api.POST("/auth/login/", a.handle(EndpointLogin, false, a.login))
	api.GET("/auth/flights/", a.handle(EndpointFlights, true, a.listFlights))
	api.GET("/auth/flights/:id/", a.handle(EndpointFlight, true, a.getFlight))
	api.GET("/bookings/", a.handle(EndpointBookings, true, a.listBookings))
	api.POST("/bookings/", a.handle(EndpointCreateBooking, true, a.createBooking))
	api.POST("/auth/payment/create-intent/", a.handle(EndpointPaymentIntent, true, a.createIntent))
	api.POST("/auth/payment/confirm/", a.handle(EndpointPaymentConfirm, true, a.confirm))
	api.GET("/auth/admin/users/pending/", a.handle(EndpointPendingUsers, true, a.listPending))
	api.POST("/auth/admin/users/:id/approve/", a.handle(EndpointReviewUser, true, a.review))

	a.server = httptest.NewServer(e)
	return a.server.URL + "/api/"
}

// Close stops the server.
func (a *API) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// Calls returns the requests recorded for endpoint.
func (a *API) Calls(endpoint string) []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Call, len(a.calls[endpoint]))
	copy(out, a.calls[endpoint])
	return out
}

// CallCount returns how many requests endpoint received.
func (a *API) CallCount(endpoint string) int {
	return len(a.Calls(endpoint))
}

// LastBody decodes the last request body sent to endpoint into out.
func (a *API) LastBody(endpoint string, out any) error {
	calls := a.Calls(endpoint)
	if len(calls) == 0 {
		return fmt.Errorf("no calls to %s", endpoint)
	}
	return json.Unmarshal(calls[len(calls)-1].Body, out)
}

// handle records the call, applies delay and failure injection, and checks
// the bearer token on protected endpoints.
func (a *API) handle(endpoint string, protected bool, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body json.RawMessage
		if c.Request().ContentLength != 0 {
			if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"detail": "malformed JSON"})
			}
		}
		c.Set("body", body)

		token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")

		a.mu.Lock()
		a.calls[endpoint] = append(a.calls[endpoint], Call{
			Path:      c.Request().URL.Path,
			Token:     token,
			RequestID: c.Request().Header.Get("X-Request-ID"),
			Body:      body,
		})
		delay := a.delays[endpoint]
		failure, failing := a.failures[endpoint]
		valid := a.token
		a.mu.Unlock()

		if delay > 0 {
			select {
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			case <-time.After(delay):
			}
		}

		if failing {
			return c.Blob(failure.Status, echo.MIMEApplicationJSON, []byte(failure.Body))
		}
		if protected && token != valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Given token not valid for any token type"})
		}
		return next(c)
	}
}

func requestBody(c echo.Context, out any) error {
	raw, _ := c.Get("body").(json.RawMessage)
	if len(raw) == 0 {
		return fmt.Errorf("empty body")
	}
	return json.Unmarshal(raw, out)
}

func (a *API) register(c echo.Context) error {
	var req map[string]string
	if err := requestBody(c, &req); err != nil || req["username"] == "" {
		return c.JSON(http.StatusBadRequest, map[string][]string{"username": {"This field is required."}})
	}
	return c.JSON(http.StatusCreated, map[string]string{"username": req["username"], "approval_status": "Pending"})
}

func (a *API) login(c echo.Context) error {
	var req map[string]string
	if err := requestBody(c, &req); err != nil || req["password"] != "secret" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "No active account found with the given credentials"})
	}
	a.mu.Lock()
	token := a.token
	a.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]string{"access": token, "refresh": "refresh-" + req["username"]})
}

func (a *API) listFlights(c echo.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, a.flights)
}

func (a *API) getFlight(c echo.Context) error {
	a.mu.Lock()
	raw := a.flights
	a.mu.Unlock()

	var flights []map[string]any
	if err := json.Unmarshal(raw, &flights); err != nil {
		return err
	}
	for _, f := range flights {
		if fmt.Sprint(f["id"]) == c.Param("id") {
			return c.JSON(http.StatusOK, f)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
}

func (a *API) listBookings(c echo.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, a.bookings)
}

func (a *API) createBooking(c echo.Context) error {
	var req map[string]any
	if err := requestBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Invalid booking"})
	}
	a.mu.Lock()
	a.nextBooking++
	id := a.nextBooking
	a.mu.Unlock()
	req["id"] = id
	req["payment_status"] = "Pending"
	return c.JSON(http.StatusCreated, req)
}

func (a *API) createIntent(c echo.Context) error {
	var req map[string]any
	if err := requestBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Invalid payment data"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"payment_intent_id": "pi_test_123",
		"client_secret":     "pi_test_123_secret",
	})
}

func (a *API) confirm(c echo.Context) error {
	var req map[string]any
	if err := requestBody(c, &req); err != nil || req["payment_intent_id"] == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Missing payment intent"})
	}
	a.mu.Lock()
	a.nextBooking++
	id := a.nextBooking
	a.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]any{"booking_id": id, "status": "succeeded"})
}

func (a *API) listPending(c echo.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, a.pendingUsers)
}

func (a *API) review(c echo.Context) error {
	var req map[string]string
	if err := requestBody(c, &req); err != nil || (req["action"] != "approve" && req["action"] != "reject") {
		return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Invalid action"})
	}
	return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id"), "action": req["action"]})
}
