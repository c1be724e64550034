package usecase

import (
	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
)

// FlightCard is a flight with its display values resolved.
type FlightCard struct {
	domain.Flight

	Route         string      `json:"route"`
	DepartureDate string      `json:"departure_date"`
	DepartureAt   string      `json:"departure_at"`
	ArrivalDate   string      `json:"arrival_date"`
	ArrivalAt     string      `json:"arrival_at"`
	DurationHours int         `json:"duration_hours"`
	StatusTone    domain.Tone `json:"status_tone"`
	PriceText     string      `json:"price_text"`
}

// NewFlightCard renders f in the display zone.
func NewFlightCard(f domain.Flight, display *timeutil.Display) FlightCard {
	if display == nil {
		display = timeutil.UTCDisplay()
	}
	return FlightCard{
		Flight:        f,
		Route:         f.Route(),
		DepartureDate: display.Date(f.DepartureTime),
		DepartureAt:   display.Time(f.DepartureTime),
		ArrivalDate:   display.Date(f.ArrivalTime),
		ArrivalAt:     display.Time(f.ArrivalTime),
		DurationHours: f.DurationHours(),
		StatusTone:    f.Status.Tone(),
		PriceText:     "$" + domain.FormatAmount(f.BasePrice),
	}
}

func newFlightCards(flights []domain.Flight, display *timeutil.Display) []FlightCard {
	cards := make([]FlightCard, 0, len(flights))
	for _, f := range flights {
		cards = append(cards, NewFlightCard(f, display))
	}
	return cards
}
