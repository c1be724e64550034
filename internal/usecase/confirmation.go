package usecase

import (
	"context"
	"errors"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/ticket"
)

// ConfirmationView is the booking-success page.
type ConfirmationView struct {
	Booking navigation.Confirmation `json:"booking"`

	// Flight is nil when the flight could not be re-fetched
	Flight *FlightCard `json:"flight,omitempty"`

	TotalText     string               `json:"total_text"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	IssueDate     string               `json:"issue_date"`
}

// ConfirmationUseCase defines the booking-success view.
type ConfirmationUseCase interface {
	// Load rebuilds the itinerary from the navigation parameters and one
	// flight re-fetch.
	Load(ctx context.Context, q url.Values) (*ConfirmationView, error)

	// Ticket writes the printable HTML e-ticket for the last loaded
	// confirmation without calling the API. It returns domain.ErrViewNotLoaded
	// before any Load and domain.ErrFlightUnavailable when the flight could
	// not be fetched.
	Ticket(w io.Writer) error
}

type confirmationUseCase struct {
	flights  domain.FlightAPI
	nav      Navigator
	clock    timeutil.Clock
	display  *timeutil.Display
	renderer *ticket.Renderer
	log      *logger.Logger

	mu       sync.Mutex
	loaded   bool
	booking  navigation.Confirmation
	flight   *domain.Flight
	issuedAt time.Time
}

// NewConfirmationUseCase creates a ConfirmationUseCase.
func NewConfirmationUseCase(flights domain.FlightAPI, nav Navigator, clock timeutil.Clock, display *timeutil.Display, renderer *ticket.Renderer, log *logger.Logger) ConfirmationUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if renderer == nil {
		renderer = ticket.MustNewRenderer(display)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &confirmationUseCase{
		flights:  flights,
		nav:      nav,
		clock:    clock,
		display:  display,
		renderer: renderer,
		log:      log.WithComponent("confirmation"),
	}
}

func (uc *confirmationUseCase) Load(ctx context.Context, q url.Values) (*ConfirmationView, error) {
	now := uc.clock.Now()
	c, flight, err := uc.resolve(ctx, q, now)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.loaded = true
	uc.booking = c
	uc.flight = flight
	uc.issuedAt = now
	uc.mu.Unlock()

	view := &ConfirmationView{
		Booking:       c,
		TotalText:     "$" + domain.FormatAmount(c.Total),
		PaymentStatus: domain.PaymentCompleted,
		IssueDate:     uc.displayOrUTC().Date(now),
	}
	if flight != nil {
		card := NewFlightCard(*flight, uc.display)
		view.Flight = &card
	}
	return view, nil
}

func (uc *confirmationUseCase) Ticket(w io.Writer) error {
	uc.mu.Lock()
	loaded, c, flight, issuedAt := uc.loaded, uc.booking, uc.flight, uc.issuedAt
	uc.mu.Unlock()

	if !loaded {
		return domain.ErrViewNotLoaded
	}
	if flight == nil {
		return domain.ErrFlightUnavailable
	}
	return uc.renderer.HTML(w, ticket.FromConfirmation(c, *flight, issuedAt))
}

// resolve decodes the parameters and re-fetches the flight. A failed fetch is
// logged and yields a nil flight, except an expired credential.
func (uc *confirmationUseCase) resolve(ctx context.Context, q url.Values, now time.Time) (navigation.Confirmation, *domain.Flight, error) {
	c, err := navigation.ParseConfirmation(q, now)
	if err != nil {
		return navigation.Confirmation{}, nil, err
	}
	if query, qerr := navigation.ConfirmationQuery(c); qerr == nil {
		uc.nav.Navigate(navigation.PathConfirmation + "?" + query)
	}

	if c.FlightID == "" {
		return c, nil, nil
	}
	flight, err := uc.flights.GetFlight(ctx, c.FlightID)
	if err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			return c, nil, failure(MsgAuthRequired, err)
		}
		uc.log.Warn().Err(err).Str("flight_id", c.FlightID).Msg("failed to load flight for confirmation")
		return c, nil, nil
	}
	return c, flight, nil
}

func (uc *confirmationUseCase) displayOrUTC() *timeutil.Display {
	if uc.display == nil {
		return timeutil.UTCDisplay()
	}
	return uc.display
}
