package apiclient

import (
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// Wire types as served by the API. Ids may be numbers or strings and prices
// are serialised decimals, so loosely typed fields go through cast.

type flightDTO struct {
	ID            any    `json:"id"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Price         any    `json:"price"`
	Status        string `json:"status"`
}

type bookingDTO struct {
	ID             any        `json:"id"`
	Flight         any        `json:"flight"`
	FlightDetails  *flightDTO `json:"flight_details"`
	SeatClass      string     `json:"seat_class"`
	PassengerCount any        `json:"passenger_count"`
	AmountPaid     any        `json:"amount_paid"`
	PaymentStatus  string     `json:"payment_status"`
	BookingDate    string     `json:"booking_date"`
}

type pendingUserDTO struct {
	ID             any     `json:"id"`
	Username       string  `json:"username"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	ApprovalStatus string  `json:"approval_status"`
	DateJoined     string  `json:"date_joined"`
	LastLogin      *string `json:"last_login"`
}

type loginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type approvalRequest struct {
	Action domain.ApprovalAction `json:"action"`
}

type paymentIntentResponse struct {
	PaymentIntentID any    `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}

type confirmResponse struct {
	BookingID any    `json:"booking_id"`
	Status    string `json:"status"`
}

func toFlight(dto flightDTO) (domain.Flight, error) {
	price, err := cast.ToFloat64E(dto.Price)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("flight %v price: %w", dto.ID, err)
	}
	dep, err := parseTime(dto.DepartureTime)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("flight %v departure_time: %w", dto.ID, err)
	}
	arr, err := parseTime(dto.ArrivalTime)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("flight %v arrival_time: %w", dto.ID, err)
	}

	return domain.Flight{
		ID:            cast.ToString(dto.ID),
		Airline:       dto.Airline,
		FlightNumber:  dto.FlightNumber,
		Origin:        dto.Origin,
		Destination:   dto.Destination,
		DepartureTime: dep,
		ArrivalTime:   arr,
		BasePrice:     price,
		Status:        domain.FlightStatus(dto.Status),
	}, nil
}

func toFlights(dtos []flightDTO) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toFlight(dto)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// toBooking falls back to one passenger and to the flight price when the
// API omits them.
func toBooking(dto bookingDTO) (domain.Booking, error) {
	b := domain.Booking{
		ID:             cast.ToString(dto.ID),
		SeatClass:      domain.SeatClass(dto.SeatClass),
		PassengerCount: cast.ToInt(dto.PassengerCount),
		AmountPaid:     cast.ToFloat64(dto.AmountPaid),
		PaymentStatus:  domain.PaymentStatus(dto.PaymentStatus),
	}

	if dto.FlightDetails != nil {
		f, err := toFlight(*dto.FlightDetails)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("booking %s: %w", b.ID, err)
		}
		b.Flight = f
	} else {
		b.Flight = domain.Flight{ID: cast.ToString(dto.Flight)}
	}

	if b.PassengerCount < domain.MinPassengers {
		b.PassengerCount = domain.MinPassengers
	}
	if b.AmountPaid == 0 {
		b.AmountPaid = b.Flight.BasePrice
	}

	booked, err := parseTime(dto.BookingDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking %s booking_date: %w", b.ID, err)
	}
	b.BookedAt = booked
	return b, nil
}

func toPendingUser(dto pendingUserDTO) (domain.PendingUser, error) {
	joined, err := parseTime(dto.DateJoined)
	if err != nil {
		return domain.PendingUser{}, fmt.Errorf("user %v date_joined: %w", dto.ID, err)
	}

	u := domain.PendingUser{
		ID:             cast.ToString(dto.ID),
		Username:       dto.Username,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		ApprovalStatus: domain.ApprovalStatus(dto.ApprovalStatus),
		RegisteredAt:   joined,
	}

	if dto.LastLogin != nil && *dto.LastLogin != "" {
		last, err := parseTime(*dto.LastLogin)
		if err != nil {
			return domain.PendingUser{}, fmt.Errorf("user %v last_login: %w", dto.ID, err)
		}
		u.LastLogin = &last
	}
	return u, nil
}

// parseTime accepts RFC 3339 and the other layouts cast understands.
// Zone-less values are read as UTC; empty input is the zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return cast.ToTimeInDefaultLocationE(s, time.UTC)
}
