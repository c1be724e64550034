package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/ticket"
)

// MsgNoBookings is the trips empty state for the unfiltered list.
const MsgNoBookings = "You haven't made any bookings yet."

// TripCard is one booking in the trips list.
type TripCard struct {
	ID             string               `json:"id"`
	Reference      string               `json:"reference"`
	Flight         FlightCard           `json:"flight"`
	SeatClass      domain.SeatClass     `json:"seat_class"`
	Passengers     int                  `json:"passengers"`
	TotalPaidText  string               `json:"total_paid_text"`
	PaymentStatus  domain.PaymentStatus `json:"payment_status"`
	PaymentTone    domain.Tone          `json:"payment_tone"`
	BookedOn       string               `json:"booked_on"`
	Upcoming       bool                 `json:"upcoming"`
	TicketFilename string               `json:"ticket_filename"`
}

// TripCounts are the per-tab totals.
type TripCounts struct {
	All       int `json:"all"`
	Upcoming  int `json:"upcoming"`
	Completed int `json:"completed"`
}

// TripsView is the rendered my-trips page.
type TripsView struct {
	Filter       domain.TripFilter `json:"filter"`
	Trips        []TripCard        `json:"trips"`
	Counts       TripCounts        `json:"counts"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

// TicketFile is a downloadable ticket.
type TicketFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// TripsUseCase defines the my-trips view.
type TripsUseCase interface {
	// Load fetches the booking list once for a view activation.
	Load(ctx context.Context, filter domain.TripFilter) (*TripsView, error)

	// Filter re-derives the view from the loaded bookings.
	Filter(filter domain.TripFilter) (*TripsView, error)

	// Ticket synthesizes the text e-ticket of a loaded booking.
	Ticket(bookingID string) (*TicketFile, error)
}

type tripsUseCase struct {
	api      domain.BookingAPI
	nav      Navigator
	clock    timeutil.Clock
	display  *timeutil.Display
	renderer *ticket.Renderer
	log      *logger.Logger

	mu       sync.RWMutex
	loaded   bool
	bookings []domain.Booking
}

// NewTripsUseCase creates a TripsUseCase.
func NewTripsUseCase(api domain.BookingAPI, nav Navigator, clock timeutil.Clock, display *timeutil.Display, renderer *ticket.Renderer, log *logger.Logger) TripsUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if renderer == nil {
		renderer = ticket.MustNewRenderer(display)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &tripsUseCase{
		api:      api,
		nav:      nav,
		clock:    clock,
		display:  display,
		renderer: renderer,
		log:      log.WithComponent("trips"),
	}
}

func (uc *tripsUseCase) Load(ctx context.Context, filter domain.TripFilter) (*TripsView, error) {
	uc.nav.Navigate(navigation.PathMyTrips)

	bookings, err := uc.api.ListBookings(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("failed to load bookings")
		return nil, failure(loadFailureMessage("your trips", err), err)
	}

	uc.mu.Lock()
	uc.bookings = bookings
	uc.loaded = true
	uc.mu.Unlock()

	return uc.render(bookings, filter), nil
}

func (uc *tripsUseCase) Filter(filter domain.TripFilter) (*TripsView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if !uc.loaded {
		return nil, domain.ErrViewNotLoaded
	}
	return uc.render(uc.bookings, filter), nil
}

func (uc *tripsUseCase) Ticket(bookingID string) (*TicketFile, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if !uc.loaded {
		return nil, domain.ErrViewNotLoaded
	}
	for _, b := range uc.bookings {
		if b.ID != bookingID {
			continue
		}
		content, err := uc.renderer.Text(ticket.FromBooking(b, uc.clock.Now()))
		if err != nil {
			return nil, err
		}
		return &TicketFile{Filename: ticket.Filename(b), ContentType: ticket.ContentTypeText, Content: content}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, bookingID)
}

// render classifies every booking against the current instant.
func (uc *tripsUseCase) render(bookings []domain.Booking, filter domain.TripFilter) *TripsView {
	now := uc.clock.Now()
	if filter == "" {
		filter = domain.TripsAll
	}

	view := &TripsView{Filter: filter, Trips: []TripCard{}}
	for _, b := range bookings {
		upcoming := b.IsUpcoming(now)
		view.Counts.All++
		if upcoming {
			view.Counts.Upcoming++
		} else {
			view.Counts.Completed++
		}
		if filter.Matches(b, now) {
			view.Trips = append(view.Trips, uc.card(b, upcoming))
		}
	}

	if len(view.Trips) == 0 {
		if filter == domain.TripsAll {
			view.EmptyMessage = MsgNoBookings
		} else {
			view.EmptyMessage = fmt.Sprintf("No %s trips found.", filter)
		}
	}
	return view
}

func (uc *tripsUseCase) card(b domain.Booking, upcoming bool) TripCard {
	display := uc.display
	if display == nil {
		display = timeutil.UTCDisplay()
	}
	return TripCard{
		ID:             b.ID,
		Reference:      b.Reference(),
		Flight:         NewFlightCard(b.Flight, display),
		SeatClass:      b.SeatClass,
		Passengers:     b.PassengerCount,
		TotalPaidText:  "$" + domain.FormatAmount(b.AmountPaid),
		PaymentStatus:  b.PaymentStatus,
		PaymentTone:    b.PaymentStatus.Tone(),
		BookedOn:       display.Date(b.BookedAt),
		Upcoming:       upcoming,
		TicketFilename: ticket.Filename(b),
	}
}
