package integration

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-booking/flight-booking-client/internal/adapter/http/response"
	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
	"github.com/flight-booking/flight-booking-client/internal/usecase"
	"github.com/flight-booking/flight-booking-client/test/mock"
)

// viewPath maps a navigation target onto the local API route serving it.
func viewPath(target string) string {
	return "/api/v1" + target
}

func completeForm() map[string]string {
	return map[string]string{
		"first_name":      "Ann",
		"last_name":       "Lee",
		"email":           "ann@example.com",
		"phone":           "555-0100",
		"card_number":     "4242 4242 4242 4242",
		"expiry_date":     "12/30",
		"cvv":             "123",
		"billing_address": "1 Main St",
		"city":            "Springfield",
		"zip_code":        "12345",
	}
}

// TestHandler_HealthCheck tests the health endpoint.
func TestHandler_HealthCheck(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	var health response.HealthResponse
	resp.Decode(t, &health)
	assert.Equal(t, "ok", health.Status)
}

// TestHandler_LoginPersistsCredential tests that a login stores the token
// and switches the navbar to the authenticated links.
func TestHandler_LoginPersistsCredential(t *testing.T) {
	ts := NewTestServer(t)

	var before session.Navbar
	resp := ts.Get("/api/v1/session")
	resp.Decode(t, &before)
	assert.False(t, before.Authenticated)

	ts.Login(t)

	stored, ok, err := ts.Store.Get(context.Background(), session.TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ts.Token, stored)

	var after session.Navbar
	resp = ts.Get("/api/v1/session")
	resp.Decode(t, &after)
	assert.True(t, after.Authenticated)
	assert.Equal(t, "ann", after.Identity)
}

// TestHandler_LoginRejected tests that a wrong password stays on the login view.
func TestHandler_LoginRejected(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Post("/api/v1/login", map[string]string{"username": "ann", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "No active account found with the given credentials", resp.Error(t).Message)
	assert.False(t, ts.Session.IsAuthenticated())
	assert.Equal(t, navigation.PathLogin, ts.Navigator.Path())
}

// TestHandler_Register tests registration against the remote service.
func TestHandler_Register(t *testing.T) {
	ts := NewTestServer(t)

	resp := ts.Post("/api/v1/register", map[string]string{
		"username": "cy",
		"email":    "cy@example.com",
		"password": "pw",
	})

	require.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	assert.Equal(t, navigation.PathLogin, resp.Location())
	assert.Equal(t, usecase.MsgRegistered, resp.Navigation(t).Message)

	var sent map[string]string
	require.NoError(t, ts.API.LastBody(mock.EndpointRegister, &sent))
	assert.Equal(t, "cy", sent["username"])
	assert.Empty(t, ts.API.Calls(mock.EndpointRegister)[0].Token)
}

// TestHandler_RegisterServerError tests that the raw server body is echoed.
func TestHandler_RegisterServerError(t *testing.T) {
	ts := NewTestServer(t)
	ts.API.WithFailure(mock.EndpointRegister, http.StatusBadRequest, `{"username":["A user with that username already exists."]}`)

	resp := ts.Post("/api/v1/register", map[string]string{
		"username": "ann",
		"email":    "ann@example.com",
		"password": "pw",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, `Error: {"username":["A user with that username already exists."]}`, resp.Error(t).Message)
}

// TestHandler_BookingFlow walks a booking from the dashboard to the
// downloadable confirmation ticket.
func TestHandler_BookingFlow(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	// Dashboard
	resp := ts.Get("/api/v1/dashboard")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var catalog usecase.CatalogView
	resp.Decode(t, &catalog)
	assert.Equal(t, 3, catalog.TotalCount)

	resp = ts.Get("/api/v1/dashboard?q=delta")
	resp.Decode(t, &catalog)
	require.Len(t, catalog.Flights, 1)
	assert.Equal(t, "7", catalog.Flights[0].ID)

	// Selection
	resp = ts.Post("/api/v1/dashboard/selection", map[string]string{"flight_id": "7"})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	resp = ts.Put("/api/v1/dashboard/selection/seat", map[string]string{"seat_class": "Business"})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var summary usecase.BookingSummary
	resp.Decode(t, &summary)
	assert.Equal(t, "$750.00", summary.PriceText)

	resp = ts.Post("/api/v1/dashboard/booking", nil)
	require.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	assert.Equal(t, "/payment?flight=7&seat=Business", resp.Location())

	var booked map[string]any
	require.NoError(t, ts.API.LastBody(mock.EndpointCreateBooking, &booked))
	assert.Equal(t, "Business", booked["seat_class"])

	// Payment
	resp = ts.Get(viewPath(resp.Location()))
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var payment usecase.PaymentView
	resp.Decode(t, &payment)
	assert.Equal(t, domain.SeatBusiness, payment.SeatClass)
	assert.Equal(t, "$750.00", payment.TotalText)

	resp = ts.Put("/api/v1/payment/form", completeForm())
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	resp.Decode(t, &payment)
	assert.Equal(t, "•••• 4242", payment.Form.CardMasked)

	resp = ts.Put("/api/v1/payment/passengers", map[string]int{"count": 2})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	resp.Decode(t, &payment)
	assert.Equal(t, "$1500.00", payment.TotalText)

	for i, name := range []string{"Ann Lee", "Bo Lee"} {
		resp = ts.Put("/api/v1/payment/passengers/"+strconv.Itoa(i), map[string]string{"name": name})
		require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	}

	resp = ts.Post("/api/v1/payment/submit", nil)
	require.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	target := resp.Location()
	assert.True(t, strings.HasPrefix(target, navigation.PathConfirmation+"?"), target)

	var intent map[string]any
	require.NoError(t, ts.API.LastBody(mock.EndpointPaymentIntent, &intent))
	assert.InDelta(t, 1500.0, intent["amount"], 1e-9)
	assert.Equal(t, "usd", intent["currency"])

	var confirm map[string]any
	require.NoError(t, ts.API.LastBody(mock.EndpointPaymentConfirm, &confirm))
	assert.Equal(t, "pi_test_123", confirm["payment_intent_id"])
	assert.Equal(t, []any{"Ann Lee", "Bo Lee"}, confirm["passenger_names"])

	// Confirmation
	resp = ts.Get(viewPath(target))
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var conf usecase.ConfirmationView
	resp.Decode(t, &conf)
	assert.Equal(t, "102", conf.Booking.BookingID)
	assert.Equal(t, []string{"Ann Lee", "Bo Lee"}, conf.Booking.PassengerNames)
	assert.Equal(t, "$1500.00", conf.TotalText)
	require.NotNil(t, conf.Flight)
	assert.Equal(t, "Delta", conf.Flight.Airline)

	flightFetches := ts.API.CallCount(mock.EndpointFlight)
	resp = ts.Get(viewPath(navigation.PathConfirmation + "/ticket"))
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, flightFetches, ts.API.CallCount(mock.EndpointFlight), "ticket is built without a fetch")
	assert.Contains(t, string(resp.Body), "Booking ID: 102")
	assert.Contains(t, string(resp.Body), "Bo Lee")
}

// TestHandler_PaymentRequiresFields tests that an incomplete form never
// reaches the remote service.
func TestHandler_PaymentRequiresFields(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	resp := ts.Get("/api/v1/payment?flight=7&seat=Economy")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	resp = ts.Post("/api/v1/payment/submit", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, usecase.MsgRequiredFields, resp.Error(t).Message)
	assert.Zero(t, ts.API.CallCount(mock.EndpointPaymentIntent))
}

// TestHandler_PaymentConfirmFailure tests that a failed confirmation keeps
// the form for a retry.
func TestHandler_PaymentConfirmFailure(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)
	ts.API.WithFailure(mock.EndpointPaymentConfirm, http.StatusBadRequest, `{"detail":"Card declined"}`)

	resp := ts.Get("/api/v1/payment?flight=7")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	resp = ts.Put("/api/v1/payment/form", completeForm())
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	resp = ts.Put("/api/v1/payment/passengers/0", map[string]string{"name": "Ann Lee"})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	resp = ts.Post("/api/v1/payment/submit", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Error(t).Message, "Card declined")

	resp = ts.Get("/api/v1/payment/form")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var payment usecase.PaymentView
	resp.Decode(t, &payment)
	assert.Equal(t, []string{"Ann Lee"}, payment.Form.PassengerNames)
	assert.Contains(t, payment.LastError, "Card declined")
	assert.False(t, payment.Processing)

	ts.API.ClearFailure(mock.EndpointPaymentConfirm)
	resp = ts.Post("/api/v1/payment/submit", nil)
	assert.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	assert.Equal(t, 2, ts.API.CallCount(mock.EndpointPaymentIntent))
}

// TestHandler_ExpiredCredential tests that a 401 from the remote service
// clears the stored token and navigates to login.
func TestHandler_ExpiredCredential(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)
	ts.API.WithFailure(mock.EndpointFlights, http.StatusUnauthorized, `{"detail":"Token is expired"}`)

	resp := ts.Get("/api/v1/dashboard")

	require.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
	assert.Equal(t, navigation.PathLogin, resp.Location())
	assert.False(t, ts.Session.IsAuthenticated())
	_, ok, err := ts.Store.Get(context.Background(), session.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestHandler_Unauthenticated tests that protected views without a token
// end on the login view.
func TestHandler_Unauthenticated(t *testing.T) {
	paths := []string{"/api/v1/dashboard", "/api/v1/my-trips", "/api/v1/admin"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			ts := NewTestServer(t)

			resp := ts.Get(path)

			assert.Equal(t, http.StatusSeeOther, resp.Code, string(resp.Body))
			assert.Equal(t, navigation.PathLogin, resp.Location())
		})
	}
}

// TestHandler_ServerErrors tests how remote failures surface on the views.
func TestHandler_ServerErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, wantStatus: http.StatusBadGateway},
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Not found."}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTestServer(t)
			ts.Login(t)
			ts.API.WithFailure(mock.EndpointBookings, tt.status, tt.body)

			resp := ts.Get("/api/v1/my-trips")

			assert.Equal(t, tt.wantStatus, resp.Code, string(resp.Body))
			assert.True(t, ts.Session.IsAuthenticated())
		})
	}
}

// TestHandler_UnreachableService tests the answer when the remote service is down.
func TestHandler_UnreachableService(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)
	ts.API.Close()

	resp := ts.Get("/api/v1/dashboard")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code, string(resp.Body))
}

// TestHandler_MyTrips tests the trip list, its filters and ticket download.
func TestHandler_MyTrips(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	resp := ts.Get("/api/v1/my-trips")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var trips usecase.TripsView
	resp.Decode(t, &trips)
	assert.Equal(t, usecase.TripCounts{All: 2, Upcoming: 1, Completed: 1}, trips.Counts)

	resp = ts.Get("/api/v1/my-trips?filter=upcoming")
	resp.Decode(t, &trips)
	require.Len(t, trips.Trips, 1)
	assert.Equal(t, "11", trips.Trips[0].ID)
	assert.Equal(t, "$1500.00", trips.Trips[0].TotalPaidText)

	resp = ts.Get("/api/v1/my-trips/10/ticket")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Contains(t, resp.Headers.Get(echo.HeaderContentDisposition), `filename="e-ticket-AB10.txt"`)
	assert.Contains(t, string(resp.Body), "Booking ID: AB10")

	resp = ts.Get("/api/v1/my-trips/99/ticket")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// TestHandler_TripsFollowClock tests that upcoming trips complete as time passes.
func TestHandler_TripsFollowClock(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)
	ts.Clock.Advance(30 * 24 * time.Hour)

	resp := ts.Get("/api/v1/my-trips?filter=upcoming")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var trips usecase.TripsView
	resp.Decode(t, &trips)
	assert.Empty(t, trips.Trips)
	assert.Equal(t, 2, trips.Counts.Completed)
}

// TestHandler_AdminReview tests approving and rejecting pending accounts.
func TestHandler_AdminReview(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	resp := ts.Get("/api/v1/admin")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var admin usecase.AdminView
	resp.Decode(t, &admin)
	assert.Equal(t, 2, admin.PendingCount)
	assert.Equal(t, usecase.MsgNeverLoggedIn, admin.Users[0].LastLogin)

	resp = ts.Post("/api/v1/admin/users/1/approve", nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	var result usecase.ReviewResult
	resp.Decode(t, &result)
	assert.Equal(t, "User approved successfully!", result.Message)
	assert.Equal(t, 1, result.View.PendingCount)

	var sent map[string]string
	require.NoError(t, ts.API.LastBody(mock.EndpointReviewUser, &sent))
	assert.Equal(t, "approve", sent["action"])

	resp = ts.Post("/api/v1/admin/users/1/reject", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	ts.API.WithFailure(mock.EndpointReviewUser, http.StatusInternalServerError, `{}`)
	resp = ts.Post("/api/v1/admin/users/2/reject", nil)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, "Failed to reject user. Please try again.", resp.Error(t).Message)
}

// TestHandler_RequestIDPropagation tests that the inbound request id is
// forwarded on every outbound call it triggers.
func TestHandler_RequestIDPropagation(t *testing.T) {
	ts := NewTestServer(t)
	ts.Login(t)

	req := Request{Method: http.MethodGet, Path: "/api/v1/dashboard"}
	resp := ts.DoWithHeader(req, "X-Request-ID", "req-int-1")
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, "req-int-1", resp.Headers.Get("X-Request-ID"))

	calls := ts.API.Calls(mock.EndpointFlights)
	require.NotEmpty(t, calls)
	assert.Equal(t, "req-int-1", calls[len(calls)-1].RequestID)
	assert.Equal(t, ts.Token, calls[len(calls)-1].Token)
}
