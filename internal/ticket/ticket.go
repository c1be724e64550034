// Package ticket renders e-ticket documents from booking facts already held by
// the client. Rendering never calls the API.
package ticket

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	texttemplate "text/template"
	"time"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Content types of the rendered documents.
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Document is everything an e-ticket shows.
type Document struct {
	BookingID      string
	IssuedAt       time.Time
	Flight         domain.Flight
	SeatClass      domain.SeatClass
	Passengers     int
	PassengerNames []string
	Total          float64
	PaymentStatus  domain.PaymentStatus
	BookedAt       time.Time
}

// FromBooking builds the trips-view ticket for a fetched booking.
func FromBooking(b domain.Booking, issuedAt time.Time) Document {
	return Document{
		BookingID:     b.Reference(),
		IssuedAt:      issuedAt,
		Flight:        b.Flight,
		SeatClass:     b.SeatClass,
		Passengers:    b.PassengerCount,
		Total:         b.AmountPaid,
		PaymentStatus: b.PaymentStatus,
		BookedAt:      b.BookedAt,
	}
}

// FromConfirmation builds the printable ticket shown after payment. The total
// is the amount carried by the navigation parameters.
func FromConfirmation(c navigation.Confirmation, flight domain.Flight, issuedAt time.Time) Document {
	return Document{
		BookingID:      c.BookingID,
		IssuedAt:       issuedAt,
		Flight:         flight,
		SeatClass:      c.SeatClass,
		Passengers:     c.Passengers,
		PassengerNames: c.PassengerNames,
		Total:          c.Total,
		PaymentStatus:  domain.PaymentCompleted,
		BookedAt:       issuedAt,
	}
}

// Filename is the download name of a booking's text ticket.
func Filename(b domain.Booking) string {
	return "e-ticket-" + b.Reference() + ".txt"
}

// Renderer renders tickets with times in one display zone.
type Renderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(display *timeutil.Display) (*Renderer, error) {
	if display == nil {
		display = timeutil.UTCDisplay()
	}
	funcs := map[string]any{
		"date":    display.Date,
		"clock":   display.Time,
		"isoDate": display.ISODate,
		"amount":  domain.FormatAmount,
		"inc":     func(i int) int { return i + 1 },
	}

	text, err := texttemplate.New("ticket.txt.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/ticket.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text ticket: %w", err)
	}
	html, err := htmltemplate.New("ticket.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/ticket.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html ticket: %w", err)
	}
	return &Renderer{text: text, html: html}, nil
}

// MustNewRenderer is NewRenderer that panics on error.
func MustNewRenderer(display *timeutil.Display) *Renderer {
	r, err := NewRenderer(display)
	if err != nil {
		panic(err)
	}
	return r
}

// Text renders the plain-text download.
func (r *Renderer) Text(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.text.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render text ticket: %w", err)
	}
	return buf.Bytes(), nil
}

// HTML writes the printable page. Passenger names and flight fields are escaped.
func (r *Renderer) HTML(w io.Writer, doc Document) error {
	if err := r.html.Execute(w, doc); err != nil {
		return fmt.Errorf("render html ticket: %w", err)
	}
	return nil
}
