package domain

import "strconv"

// Passenger count bounds for a single payment.
const (
	MinPassengers = 1
	MaxPassengers = 9
)

// SeatPrice is the price of one seat: basePrice × multiplier(class).
func SeatPrice(basePrice float64, class SeatClass) float64 {
	return basePrice * class.Multiplier()
}

// SeatUpcharge is the amount a class adds over Economy for one seat.
func SeatUpcharge(basePrice float64, class SeatClass) float64 {
	return basePrice * (class.Multiplier() - 1)
}

// Total is the amount charged: basePrice × multiplier(class) × passengers.
// It is computed at full precision; round only for display.
func Total(basePrice float64, class SeatClass, passengers int) float64 {
	return basePrice * class.Multiplier() * float64(passengers)
}

// ClampPassengers bounds n to [MinPassengers, MaxPassengers].
func ClampPassengers(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	if n > MaxPassengers {
		return MaxPassengers
	}
	return n
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatUpcharge renders an upcharge as "$0" or "+$X.XX".
func FormatUpcharge(amount float64) string {
	if amount == 0 {
		return "$0"
	}
	return "+$" + FormatAmount(amount)
}

// EncodeAmount renders an amount at full precision for navigation parameters.
func EncodeAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// PriceBreakdown is the derived price summary shown before and during payment.
type PriceBreakdown struct {
	BasePrice  float64   `json:"base_price"`
	SeatClass  SeatClass `json:"seat_class"`
	SeatPrice  float64   `json:"seat_price"`
	Upcharge   float64   `json:"upcharge"`
	Passengers int       `json:"passengers"`
	Total      float64   `json:"total"`
}

// NewPriceBreakdown derives every price figure from the three inputs.
func NewPriceBreakdown(basePrice float64, class SeatClass, passengers int) PriceBreakdown {
	return PriceBreakdown{
		BasePrice:  basePrice,
		SeatClass:  class,
		SeatPrice:  SeatPrice(basePrice, class),
		Upcharge:   SeatUpcharge(basePrice, class),
		Passengers: passengers,
		Total:      Total(basePrice, class, passengers),
	}
}
