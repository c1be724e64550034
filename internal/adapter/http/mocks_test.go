package http

import (
	"context"
	"io"
	"net/url"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
	"github.com/flight-booking/flight-booking-client/internal/usecase"
)

// mockAuth is a func-field implementation of usecase.AuthUseCase.
type mockAuth struct {
	loginFunc    func(ctx context.Context, creds domain.Credentials) (usecase.Outcome, error)
	registerFunc func(ctx context.Context, reg domain.Registration) (usecase.Outcome, error)
	logoutFunc   func(ctx context.Context) (usecase.Outcome, error)
	navbar       session.Navbar
}

func (m *mockAuth) Login(ctx context.Context, creds domain.Credentials) (usecase.Outcome, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, creds)
	}
	return usecase.Outcome{Redirect: navigation.PathDashboard}, nil
}

func (m *mockAuth) Register(ctx context.Context, reg domain.Registration) (usecase.Outcome, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, reg)
	}
	return usecase.Outcome{Redirect: navigation.PathLogin}, nil
}

func (m *mockAuth) Logout(ctx context.Context) (usecase.Outcome, error) {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx)
	}
	return usecase.Outcome{Redirect: navigation.PathLogin}, nil
}

func (m *mockAuth) Navbar() session.Navbar {
	return m.navbar
}

// mockCatalog is a func-field implementation of usecase.CatalogUseCase.
type mockCatalog struct {
	loadFunc  func(ctx context.Context) (*usecase.CatalogView, error)
	queryFunc func(q domain.CatalogQuery) (*usecase.CatalogView, error)
}

func (m *mockCatalog) Load(ctx context.Context) (*usecase.CatalogView, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return &usecase.CatalogView{Flights: []usecase.FlightCard{}}, nil
}

func (m *mockCatalog) Query(q domain.CatalogQuery) (*usecase.CatalogView, error) {
	if m.queryFunc != nil {
		return m.queryFunc(q)
	}
	return &usecase.CatalogView{Query: q, Flights: []usecase.FlightCard{}}, nil
}

func (m *mockCatalog) Flight(id string) (domain.Flight, error) {
	return domain.Flight{}, domain.ErrFlightUnavailable
}

// mockBooking is a func-field implementation of usecase.BookingUseCase.
type mockBooking struct {
	selectFunc     func(flightID string) (*usecase.BookingSummary, error)
	chooseSeatFunc func(class domain.SeatClass) (*usecase.BookingSummary, error)
	deselectFunc   func() (*usecase.BookingSummary, error)
	submitFunc     func(ctx context.Context) (usecase.Outcome, error)
}

func (m *mockBooking) Select(flightID string) (*usecase.BookingSummary, error) {
	if m.selectFunc != nil {
		return m.selectFunc(flightID)
	}
	return &usecase.BookingSummary{State: usecase.StateFlightSelected}, nil
}

func (m *mockBooking) ChooseSeat(class domain.SeatClass) (*usecase.BookingSummary, error) {
	if m.chooseSeatFunc != nil {
		return m.chooseSeatFunc(class)
	}
	return &usecase.BookingSummary{State: usecase.StateSeatChosen, SeatClass: class}, nil
}

func (m *mockBooking) Deselect() (*usecase.BookingSummary, error) {
	if m.deselectFunc != nil {
		return m.deselectFunc()
	}
	return &usecase.BookingSummary{State: usecase.StateBrowsing}, nil
}

func (m *mockBooking) Submit(ctx context.Context) (usecase.Outcome, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx)
	}
	return usecase.Outcome{}, domain.ErrNoFlightSelected
}

func (m *mockBooking) Summary() *usecase.BookingSummary {
	return &usecase.BookingSummary{State: usecase.StateBrowsing}
}

// mockPayment is a func-field implementation of usecase.PaymentUseCase.
type mockPayment struct {
	activateFunc          func(ctx context.Context, params navigation.PaymentParams) (*usecase.PaymentView, error)
	setFieldsFunc         func(fields map[string]string) (*usecase.PaymentView, error)
	setPassengerCountFunc func(n int) (*usecase.PaymentView, error)
	setPassengerNameFunc  func(index int, name string) (*usecase.PaymentView, error)
	submitFunc            func(ctx context.Context) (usecase.Outcome, error)
	viewFunc              func() (*usecase.PaymentView, error)
}

func (m *mockPayment) Activate(ctx context.Context, params navigation.PaymentParams) (*usecase.PaymentView, error) {
	if m.activateFunc != nil {
		return m.activateFunc(ctx, params)
	}
	return &usecase.PaymentView{SeatClass: params.SeatClass}, nil
}

func (m *mockPayment) SetFields(fields map[string]string) (*usecase.PaymentView, error) {
	if m.setFieldsFunc != nil {
		return m.setFieldsFunc(fields)
	}
	return &usecase.PaymentView{}, nil
}

func (m *mockPayment) SetPassengerCount(n int) (*usecase.PaymentView, error) {
	if m.setPassengerCountFunc != nil {
		return m.setPassengerCountFunc(n)
	}
	return &usecase.PaymentView{}, nil
}

func (m *mockPayment) SetPassengerName(index int, name string) (*usecase.PaymentView, error) {
	if m.setPassengerNameFunc != nil {
		return m.setPassengerNameFunc(index, name)
	}
	return &usecase.PaymentView{}, nil
}

func (m *mockPayment) Submit(ctx context.Context) (usecase.Outcome, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx)
	}
	return usecase.Outcome{}, domain.ErrViewNotLoaded
}

func (m *mockPayment) View() (*usecase.PaymentView, error) {
	if m.viewFunc != nil {
		return m.viewFunc()
	}
	return nil, domain.ErrViewNotLoaded
}

// mockConfirmation is a func-field implementation of usecase.ConfirmationUseCase.
type mockConfirmation struct {
	loadFunc   func(ctx context.Context, q url.Values) (*usecase.ConfirmationView, error)
	ticketFunc func(w io.Writer) error
}

func (m *mockConfirmation) Load(ctx context.Context, q url.Values) (*usecase.ConfirmationView, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, q)
	}
	return &usecase.ConfirmationView{}, nil
}

func (m *mockConfirmation) Ticket(w io.Writer) error {
	if m.ticketFunc != nil {
		return m.ticketFunc(w)
	}
	return domain.ErrViewNotLoaded
}

// mockTrips is a func-field implementation of usecase.TripsUseCase.
type mockTrips struct {
	loadFunc   func(ctx context.Context, filter domain.TripFilter) (*usecase.TripsView, error)
	ticketFunc func(bookingID string) (*usecase.TicketFile, error)
}

func (m *mockTrips) Load(ctx context.Context, filter domain.TripFilter) (*usecase.TripsView, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, filter)
	}
	return &usecase.TripsView{Filter: filter, Trips: []usecase.TripCard{}}, nil
}

func (m *mockTrips) Filter(filter domain.TripFilter) (*usecase.TripsView, error) {
	return &usecase.TripsView{Filter: filter, Trips: []usecase.TripCard{}}, nil
}

func (m *mockTrips) Ticket(bookingID string) (*usecase.TicketFile, error) {
	if m.ticketFunc != nil {
		return m.ticketFunc(bookingID)
	}
	return nil, domain.ErrViewNotLoaded
}

// mockAdmin is a func-field implementation of usecase.AdminUseCase.
type mockAdmin struct {
	loadFunc   func(ctx context.Context) (*usecase.AdminView, error)
	reviewFunc func(ctx context.Context, userID string, action domain.ApprovalAction) (*usecase.ReviewResult, error)
	viewFunc   func() (*usecase.AdminView, error)
}

func (m *mockAdmin) Load(ctx context.Context) (*usecase.AdminView, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return &usecase.AdminView{Users: []usecase.PendingUserCard{}}, nil
}

func (m *mockAdmin) Review(ctx context.Context, userID string, action domain.ApprovalAction) (*usecase.ReviewResult, error) {
	if m.reviewFunc != nil {
		return m.reviewFunc(ctx, userID, action)
	}
	return nil, domain.ErrViewNotLoaded
}

func (m *mockAdmin) View() (*usecase.AdminView, error) {
	if m.viewFunc != nil {
		return m.viewFunc()
	}
	return nil, domain.ErrViewNotLoaded
}

// mocks bundles one of each mock so a test only sets the funcs it needs.
type mocks struct {
	auth         *mockAuth
	catalog      *mockCatalog
	booking      *mockBooking
	payment      *mockPayment
	confirmation *mockConfirmation
	trips        *mockTrips
	admin        *mockAdmin
}

func newMocks() *mocks {
	return &mocks{
		auth:         &mockAuth{},
		catalog:      &mockCatalog{},
		booking:      &mockBooking{},
		payment:      &mockPayment{},
		confirmation: &mockConfirmation{},
		trips:        &mockTrips{},
		admin:        &mockAdmin{},
	}
}

func (m *mocks) useCases() UseCases {
	return UseCases{
		Auth:         m.auth,
		Catalog:      m.catalog,
		Booking:      m.booking,
		Payment:      m.payment,
		Confirmation: m.confirmation,
		Trips:        m.trips,
		Admin:        m.admin,
	}
}
