package domain

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

import "context"

// AuthAPI issues and creates accounts.
type AuthAPI interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, creds Credentials) (string, error)

	// Register creates an account pending admin approval.
	Register(ctx context.Context, reg Registration) error
}

// FlightAPI reads the flight catalog.
type FlightAPI interface {
	ListFlights(ctx context.Context) ([]Flight, error)
	GetFlight(ctx context.Context, id string) (*Flight, error)
}

// BookingAPI creates and lists the current user's bookings.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req BookingRequest) error
	ListBookings(ctx context.Context) ([]Booking, error)
}

// PaymentAPI runs the two-phase payment: create an intent, then confirm it.
type PaymentAPI interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
	ConfirmPayment(ctx context.Context, req PaymentConfirmation) (*PaymentReceipt, error)
}

// AdminAPI reviews pending accounts.
type AdminAPI interface {
	ListPendingUsers(ctx context.Context) ([]PendingUser, error)
	ReviewUser(ctx context.Context, id string, action ApprovalAction) error
}
