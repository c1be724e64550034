package navigation

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Query parameter names shared by the booking, payment and confirmation views.
const (
	ParamFlight         = "flight"
	ParamSeat           = "seat"
	ParamTotal          = "total"
	ParamBooking        = "booking"
	ParamPassengers     = "passengers"
	ParamPassengerNames = "passengerNames"
)

// PaymentParams is the context carried from booking to payment.
type PaymentParams struct {
	FlightID  string           `json:"flight_id"`
	SeatClass domain.SeatClass `json:"seat_class"`
}

// PaymentTarget builds "/payment?flight=<id>&seat=<class>".
func PaymentTarget(flightID string, seat domain.SeatClass) string {
	q := url.Values{}
	q.Set(ParamFlight, flightID)
	q.Set(ParamSeat, string(seat))
	return PathPayment + "?" + q.Encode()
}

// ParsePaymentParams reads the payment view parameters. A missing or unknown
// seat class falls back to Economy.
func ParsePaymentParams(q url.Values) PaymentParams {
	return PaymentParams{
		FlightID:  strings.TrimSpace(q.Get(ParamFlight)),
		SeatClass: domain.SeatClassOrDefault(q.Get(ParamSeat)),
	}
}

// Confirmation is every booking fact the confirmation view receives.
type Confirmation struct {
	FlightID  string           `json:"flight_id"`
	SeatClass domain.SeatClass `json:"seat_class"`

	// Total is the charged amount as computed before payment. It is passed
	// through navigation and not re-validated by the server.
	Total float64 `json:"total"`

	BookingID      string   `json:"booking_id"`
	Passengers     int      `json:"passengers"`
	PassengerNames []string `json:"passenger_names"`
}

// ConfirmationTarget builds the confirmation view target. The passenger names
// are a JSON array, URL-encoded once.
func ConfirmationTarget(c Confirmation) (string, error) {
	names := c.PassengerNames
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("encode passenger names: %w", err)
	}

	q := url.Values{}
	q.Set(ParamFlight, c.FlightID)
	q.Set(ParamSeat, string(c.SeatClass))
	q.Set(ParamTotal, domain.EncodeAmount(c.Total))
	q.Set(ParamBooking, c.BookingID)
	q.Set(ParamPassengers, strconv.Itoa(c.Passengers))
	q.Set(ParamPassengerNames, string(raw))
	return PathConfirmation + "?" + q.Encode(), nil
}

// ParseConfirmation decodes the confirmation parameters.
// Defaults: booking id "AB<unix millis of now>", one passenger, no names.
func ParseConfirmation(q url.Values, now time.Time) (Confirmation, error) {
	c := Confirmation{
		FlightID:       strings.TrimSpace(q.Get(ParamFlight)),
		SeatClass:      domain.SeatClassOrDefault(q.Get(ParamSeat)),
		BookingID:      q.Get(ParamBooking),
		Passengers:     domain.MinPassengers,
		PassengerNames: []string{},
	}

	if c.BookingID == "" {
		c.BookingID = "AB" + strconv.FormatInt(now.UnixMilli(), 10)
	}

	if raw := q.Get(ParamTotal); raw != "" {
		total, err := cast.ToFloat64E(raw)
		if err != nil {
			return Confirmation{}, fmt.Errorf("%w: total %q", domain.ErrInvalidRequest, raw)
		}
		c.Total = total
	}

	if raw := q.Get(ParamPassengers); raw != "" {
		n, err := cast.ToIntE(raw)
		if err != nil || n < domain.MinPassengers || n > domain.MaxPassengers {
			return Confirmation{}, fmt.Errorf("%w: passengers %q", domain.ErrInvalidRequest, raw)
		}
		c.Passengers = n
	}

	if raw := q.Get(ParamPassengerNames); raw != "" {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err != nil {
			return Confirmation{}, fmt.Errorf("%w: passenger names: %v", domain.ErrInvalidRequest, err)
		}
		if names != nil {
			c.PassengerNames = names
		}
	}

	return c, nil
}

// ConfirmationQuery re-encodes c as a query string, without the path.
func ConfirmationQuery(c Confirmation) (string, error) {
	target, err := ConfirmationTarget(c)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(target, PathConfirmation+"?"), nil
}
