package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Endpoint paths, relative to the base URL.
const (
	pathRegister       = "auth/register/"
	pathLogin          = "auth/login/"
	pathFlights        = "auth/flights/"
	pathBookings       = "bookings/"
	pathPendingUsers   = "auth/admin/users/pending/"
	pathPaymentIntent  = "auth/payment/create-intent/"
	pathPaymentConfirm = "auth/payment/confirm/"
)

// Register creates an account that waits for admin approval.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.post(ctx, pathRegister, reg, nil)
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, pathLogin, creds, &resp); err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", fmt.Errorf("login response has no access token")
	}
	return resp.Access, nil
}

// ListFlights returns the full catalog.
func (c *Client) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	var dtos []flightDTO
	if err := c.get(ctx, pathFlights, &dtos); err != nil {
		return nil, err
	}
	return toFlights(dtos)
}

// GetFlight returns one flight.
func (c *Client) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	seg, err := pathSegment(id)
	if err != nil {
		return nil, err
	}
	var dto flightDTO
	if err := c.get(ctx, pathFlights+seg+"/", &dto); err != nil {
		return nil, err
	}
	f, err := toFlight(dto)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateBooking records a booking for the current user.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) error {
	return c.post(ctx, pathBookings, req, nil)
}

// ListBookings returns the current user's bookings.
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var dtos []bookingDTO
	if err := c.get(ctx, pathBookings, &dtos); err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toBooking(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CreatePaymentIntent is step one of a payment.
func (c *Client) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	var resp paymentIntentResponse
	if err := c.post(ctx, pathPaymentIntent, req, &resp); err != nil {
		return nil, err
	}
	id := cast.ToString(resp.PaymentIntentID)
	if id == "" {
		return nil, fmt.Errorf("payment intent response has no payment_intent_id")
	}
	return &domain.PaymentIntent{ID: id, ClientSecret: resp.ClientSecret}, nil
}

// ConfirmPayment is step two of a payment; it returns the issued booking id.
func (c *Client) ConfirmPayment(ctx context.Context, req domain.PaymentConfirmation) (*domain.PaymentReceipt, error) {
	var resp confirmResponse
	if err := c.post(ctx, pathPaymentConfirm, req, &resp); err != nil {
		return nil, err
	}
	return &domain.PaymentReceipt{BookingID: cast.ToString(resp.BookingID), Status: resp.Status}, nil
}

// ListPendingUsers returns accounts awaiting review.
func (c *Client) ListPendingUsers(ctx context.Context) ([]domain.PendingUser, error) {
	var dtos []pendingUserDTO
	if err := c.get(ctx, pathPendingUsers, &dtos); err != nil {
		return nil, err
	}
	users := make([]domain.PendingUser, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toPendingUser(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ReviewUser approves or rejects an account. Both actions share one endpoint.
func (c *Client) ReviewUser(ctx context.Context, id string, action domain.ApprovalAction) error {
	seg, err := pathSegment(id)
	if err != nil {
		return err
	}
	return c.post(ctx, "auth/admin/users/"+seg+"/approve/", approvalRequest{Action: action}, nil)
}

// pathSegment escapes an id for use as one path segment.
func pathSegment(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "." || id == ".." {
		return "", fmt.Errorf("%w: id %q", domain.ErrInvalidRequest, id)
	}
	return url.PathEscape(id), nil
}

var (
	_ domain.AuthAPI    = (*Client)(nil)
	_ domain.FlightAPI  = (*Client)(nil)
	_ domain.BookingAPI = (*Client)(nil)
	_ domain.PaymentAPI = (*Client)(nil)
	_ domain.AdminAPI   = (*Client)(nil)
)
