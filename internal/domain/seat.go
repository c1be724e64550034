package domain

import (
	"fmt"
	"strings"
)

// SeatClass is the cabin a booking is made in.
type SeatClass string

// Seat classes offered by the client.
const (
	SeatEconomy  SeatClass = "Economy"
	SeatRegular  SeatClass = "Regular"
	SeatBusiness SeatClass = "Business"
)

// DefaultSeatClass is used when no class has been chosen or passed.
const DefaultSeatClass = SeatEconomy

// SeatClasses lists every class in display order.
var SeatClasses = []SeatClass{SeatEconomy, SeatBusiness, SeatRegular}

// Multiplier returns the fixed factor applied to a flight's base price.
// Unknown classes price like Economy.
func (c SeatClass) Multiplier() float64 {
	switch c {
	case SeatBusiness:
		return 1.5
	case SeatRegular:
		return 1.2
	default:
		return 1.0
	}
}

// IsValid checks if the seat class is one of the offered classes.
func (c SeatClass) IsValid() bool {
	switch c {
	case SeatEconomy, SeatRegular, SeatBusiness:
		return true
	default:
		return false
	}
}

// ParseSeatClass converts a string to a SeatClass (case-insensitive).
// Empty input yields DefaultSeatClass.
func ParseSeatClass(s string) (SeatClass, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultSeatClass, nil
	}
	for _, c := range SeatClasses {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSeatClass, s)
}

// SeatClassOrDefault parses s and falls back to DefaultSeatClass on error.
func SeatClassOrDefault(s string) SeatClass {
	c, err := ParseSeatClass(s)
	if err != nil {
		return DefaultSeatClass
	}
	return c
}
