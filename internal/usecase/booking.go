package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// Booking messages.
const (
	MsgBookingCreated = "Booking successful! Redirecting to payment..."
	MsgBookingRetry   = "Please try again."
)

// BookingState is a state of the booking workflow.
type BookingState string

// Booking workflow states.
const (
	StateBrowsing       BookingState = "browsing"
	StateFlightSelected BookingState = "flight_selected"
	StateSeatChosen     BookingState = "seat_chosen"
	StateSubmitting     BookingState = "submitting"
	StateRedirected     BookingState = "redirected"
	StateFailed         BookingState = "failed"
)

// SeatOption is one seat class priced for the selected flight.
type SeatOption struct {
	SeatClass    domain.SeatClass `json:"seat_class"`
	Price        float64          `json:"price"`
	PriceText    string           `json:"price_text"`
	UpchargeText string           `json:"upcharge_text"`
	Selected     bool             `json:"selected"`
}

// BookingSummary is the booking panel for the current state.
type BookingSummary struct {
	State BookingState `json:"state"`

	// Flight, SeatClass and the price fields are set while a draft exists
	Flight    *FlightCard      `json:"flight,omitempty"`
	SeatClass domain.SeatClass `json:"seat_class,omitempty"`
	Price     float64          `json:"price,omitempty"`
	PriceText string           `json:"price_text,omitempty"`
	Options   []SeatOption     `json:"seat_options,omitempty"`

	// LastError is the message of the most recent failed submit
	LastError string `json:"last_error,omitempty"`
}

// FlightLookup resolves a flight the user picked from the catalog.
type FlightLookup interface {
	Flight(id string) (domain.Flight, error)
}

// BookingUseCase defines the booking workflow:
// Browsing → FlightSelected → SeatChosen → Submitting → {Redirected | Failed}.
type BookingUseCase interface {
	// Select opens a draft for a catalog flight with the default seat class.
	Select(flightID string) (*BookingSummary, error)

	// ChooseSeat changes the draft's seat class.
	ChooseSeat(class domain.SeatClass) (*BookingSummary, error)

	// Deselect discards the draft.
	Deselect() (*BookingSummary, error)

	// Submit creates the booking and navigates to payment.
	Submit(ctx context.Context) (Outcome, error)

	// Summary returns the current panel.
	Summary() *BookingSummary
}

type bookingUseCase struct {
	api     domain.BookingAPI
	flights FlightLookup
	nav     Navigator
	display *timeutil.Display
	log     *logger.Logger

	mu        sync.Mutex
	state     BookingState
	draft     *domain.BookingDraft
	lastError string
}

// NewBookingUseCase creates a BookingUseCase in the Browsing state.
func NewBookingUseCase(api domain.BookingAPI, flights FlightLookup, nav Navigator, display *timeutil.Display, log *logger.Logger) BookingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{
		api:     api,
		flights: flights,
		nav:     nav,
		display: display,
		log:     log.WithComponent("booking"),
		state:   StateBrowsing,
	}
}

func (uc *bookingUseCase) Select(flightID string) (*BookingSummary, error) {
	flight, err := uc.flights.Flight(flightID)
	if err != nil {
		return nil, fmt.Errorf("select flight %q: %w", flightID, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state == StateSubmitting {
		return nil, domain.ErrActionInProgress
	}
	uc.draft = &domain.BookingDraft{Flight: flight, SeatClass: domain.DefaultSeatClass}
	uc.lastError = ""
	uc.transition(StateFlightSelected)
	return uc.summaryLocked(), nil
}

func (uc *bookingUseCase) ChooseSeat(class domain.SeatClass) (*BookingSummary, error) {
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSeatClass, class)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch uc.state {
	case StateFlightSelected, StateSeatChosen:
	case StateSubmitting:
		return nil, domain.ErrActionInProgress
	default:
		return nil, domain.ErrNoFlightSelected
	}
	uc.draft.SeatClass = class
	uc.transition(StateSeatChosen)
	return uc.summaryLocked(), nil
}

func (uc *bookingUseCase) Deselect() (*BookingSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch uc.state {
	case StateFlightSelected, StateSeatChosen:
	default:
		return nil, fmt.Errorf("%w: cannot deselect while %s", domain.ErrInvalidTransition, uc.state)
	}
	uc.draft = nil
	uc.lastError = ""
	uc.transition(StateBrowsing)
	return uc.summaryLocked(), nil
}

func (uc *bookingUseCase) Submit(ctx context.Context) (Outcome, error) {
	uc.mu.Lock()
	switch uc.state {
	case StateFlightSelected, StateSeatChosen:
	case StateSubmitting:
		uc.mu.Unlock()
		return Outcome{}, domain.ErrActionInProgress
	default:
		uc.mu.Unlock()
		return Outcome{}, domain.ErrNoFlightSelected
	}
	draft := *uc.draft
	uc.transition(StateSubmitting)
	uc.mu.Unlock()

	// The lock is not held across the call; Submitting rejects concurrent actions.
	err := uc.api.CreateBooking(context.WithoutCancel(ctx), domain.BookingRequest{
		FlightID:  draft.Flight.ID,
		SeatClass: draft.SeatClass,
	})

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		msg := "Booking failed! " + firstNonEmpty(domain.ServerDetail(err), MsgBookingRetry)
		uc.log.Warn().Err(err).Str("flight_id", draft.Flight.ID).Msg("booking failed")
		uc.transition(StateFailed)
		uc.lastError = msg
		uc.transition(StateSeatChosen)
		return Outcome{}, failure(msg, err)
	}

	uc.transition(StateRedirected)
	uc.draft = nil
	uc.lastError = ""
	target := uc.nav.Navigate(navigation.PaymentTarget(draft.Flight.ID, draft.SeatClass))

	uc.log.Info().
		Str("flight_id", draft.Flight.ID).
		Str("seat_class", string(draft.SeatClass)).
		Msg("booking created")
	return Outcome{Redirect: target, Message: MsgBookingCreated}, nil
}

func (uc *bookingUseCase) Summary() *BookingSummary {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.summaryLocked()
}

func (uc *bookingUseCase) transition(to BookingState) {
	uc.log.Debug().Str("from", string(uc.state)).Str("to", string(to)).Msg("booking transition")
	uc.state = to
}

func (uc *bookingUseCase) summaryLocked() *BookingSummary {
	s := &BookingSummary{State: uc.state, LastError: uc.lastError}
	if uc.draft == nil {
		return s
	}

	card := NewFlightCard(uc.draft.Flight, uc.display)
	s.Flight = &card
	s.SeatClass = uc.draft.SeatClass
	s.Price = uc.draft.Price()
	s.PriceText = "$" + domain.FormatAmount(s.Price)
	s.Options = SeatOptions(uc.draft.Flight.BasePrice, uc.draft.SeatClass)
	return s
}

// SeatOptions prices every seat class for one passenger.
func SeatOptions(basePrice float64, selected domain.SeatClass) []SeatOption {
	options := make([]SeatOption, 0, len(domain.SeatClasses))
	for _, c := range domain.SeatClasses {
		price := domain.SeatPrice(basePrice, c)
		options = append(options, SeatOption{
			SeatClass:    c,
			Price:        price,
			PriceText:    "$" + domain.FormatAmount(price),
			UpchargeText: domain.FormatUpcharge(domain.SeatUpcharge(basePrice, c)),
			Selected:     c == selected,
		})
	}
	return options
}
