package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// Payment view messages.
const (
	MsgFlightLoadFailed = "Failed to load flight details"
	MsgRequiredFields   = "Please fill in all required fields."
)

// DefaultCurrency is charged when no currency is configured.
const DefaultCurrency = "usd"

// SagaState is the step reached by the two-phase payment.
type SagaState string

// Payment saga states.
const (
	SagaIdle          SagaState = "idle"
	SagaIntentCreated SagaState = "intent_created"
	SagaConfirmed     SagaState = "confirmed"
	SagaFailed        SagaState = "failed"
)

// PaymentConfig contains configuration options for the payment workflow.
type PaymentConfig struct {
	Currency string
}

// DefaultPaymentConfig returns the default configuration.
func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{Currency: DefaultCurrency}
}

// PaymentFormView is the form as echoed back to the client. Card values are
// never returned.
type PaymentFormView struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	CardMasked     string   `json:"card_masked"`
	HasExpiry      bool     `json:"has_expiry"`
	HasCVV         bool     `json:"has_cvv"`
	BillingAddress string   `json:"billing_address"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	PassengerCount int      `json:"passenger_count"`
	PassengerNames []string `json:"passenger_names"`
}

// PaymentView is the rendered payment page.
type PaymentView struct {
	Flight    FlightCard            `json:"flight"`
	SeatClass domain.SeatClass      `json:"seat_class"`
	Breakdown domain.PriceBreakdown `json:"breakdown"`
	Currency  string                `json:"currency"`

	BasePriceText string `json:"base_price_text"`
	UpchargeText  string `json:"upcharge_text"`
	TotalText     string `json:"total_text"`

	Form       PaymentFormView `json:"form"`
	Processing bool            `json:"processing"`
	Saga       SagaState       `json:"saga"`
	LastError  string          `json:"last_error,omitempty"`
}

// PaymentUseCase defines the payment workflow.
type PaymentUseCase interface {
	// Activate loads the flight named by the navigation parameters and
	// starts a fresh form.
	Activate(ctx context.Context, params navigation.PaymentParams) (*PaymentView, error)

	// SetFields assigns payer, card and billing fields by wire name.
	// Either every field is applied or none is.
	SetFields(fields map[string]string) (*PaymentView, error)

	// SetPassengerCount resizes the passenger list, clamped to [1,9].
	SetPassengerCount(n int) (*PaymentView, error)

	// SetPassengerName sets one passenger's full name (zero-based index).
	SetPassengerName(index int, name string) (*PaymentView, error)

	// Submit runs create-intent then confirm, and navigates to the
	// confirmation view on success.
	Submit(ctx context.Context) (Outcome, error)

	// View returns the current page.
	View() (*PaymentView, error)
}

type paymentUseCase struct {
	payments domain.PaymentAPI
	flights  domain.FlightAPI
	nav      Navigator
	display  *timeutil.Display
	currency string
	log      *logger.Logger

	mu         sync.Mutex
	flight     *domain.Flight
	seat       domain.SeatClass
	form       *domain.PaymentForm
	processing bool
	saga       SagaState
	lastError  string
}

// NewPaymentUseCase creates a PaymentUseCase.
// If config is nil, the default currency is used.
func NewPaymentUseCase(payments domain.PaymentAPI, flights domain.FlightAPI, nav Navigator, display *timeutil.Display, config *PaymentConfig, log *logger.Logger) PaymentUseCase {
	cfg := DefaultPaymentConfig()
	if config != nil && strings.TrimSpace(config.Currency) != "" {
		cfg.Currency = strings.ToLower(strings.TrimSpace(config.Currency))
	}
	if log == nil {
		log = logger.Nop()
	}
	return &paymentUseCase{
		payments: payments,
		flights:  flights,
		nav:      nav,
		display:  display,
		currency: cfg.Currency,
		log:      log.WithComponent("payment"),
		form:     domain.NewPaymentForm(),
		saga:     SagaIdle,
	}
}

func (uc *paymentUseCase) Activate(ctx context.Context, params navigation.PaymentParams) (*PaymentView, error) {
	uc.mu.Lock()
	if uc.processing {
		uc.mu.Unlock()
		return nil, domain.ErrActionInProgress
	}
	params.SeatClass = domain.SeatClassOrDefault(string(params.SeatClass))
	uc.flight = nil
	uc.seat = params.SeatClass
	uc.form = domain.NewPaymentForm()
	uc.saga = SagaIdle
	uc.lastError = ""
	uc.mu.Unlock()

	if params.FlightID == "" {
		uc.nav.Navigate(navigation.PathPayment)
		return nil, &ViewError{Message: MsgFlightUnavailable, Err: domain.ErrFlightUnavailable}
	}
	uc.nav.Navigate(navigation.PaymentTarget(params.FlightID, params.SeatClass))

	flight, err := uc.flights.GetFlight(ctx, params.FlightID)
	if err != nil {
		uc.log.Warn().Err(err).Str("flight_id", params.FlightID).Msg("failed to load flight for payment")
		ve := failure(MsgFlightLoadFailed, err)
		if ve.Redirect == "" {
			ve.Redirect = uc.nav.Navigate(navigation.PathDashboard)
		}
		return nil, ve
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.flight = flight
	return uc.viewLocked(), nil
}

func (uc *paymentUseCase) SetFields(fields map[string]string) (*PaymentView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.editableLocked(); err != nil {
		return nil, err
	}
	next := *uc.form
	for name, value := range fields {
		if err := next.SetField(name, value); err != nil {
			return nil, err
		}
	}
	*uc.form = next
	return uc.viewLocked(), nil
}

func (uc *paymentUseCase) SetPassengerCount(n int) (*PaymentView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.editableLocked(); err != nil {
		return nil, err
	}
	applied := uc.form.SetPassengerCount(n)
	uc.log.Debug().Int("requested", n).Int("applied", applied).Msg("passenger count changed")
	return uc.viewLocked(), nil
}

func (uc *paymentUseCase) SetPassengerName(index int, name string) (*PaymentView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.editableLocked(); err != nil {
		return nil, err
	}
	if err := uc.form.SetPassengerName(index, name); err != nil {
		return nil, err
	}
	return uc.viewLocked(), nil
}

func (uc *paymentUseCase) View() (*PaymentView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.flight == nil {
		return nil, domain.ErrViewNotLoaded
	}
	return uc.viewLocked(), nil
}

// paymentAttempt is the form snapshot a submit works from.
type paymentAttempt struct {
	flightID   string
	seat       domain.SeatClass
	passengers int
	names      []string
	total      float64
}

func (uc *paymentUseCase) Submit(ctx context.Context) (Outcome, error) {
	uc.mu.Lock()
	if err := uc.editableLocked(); err != nil {
		uc.mu.Unlock()
		return Outcome{}, err
	}
	if err := uc.form.Validate(); err != nil {
		uc.mu.Unlock()
		return Outcome{}, &ViewError{Message: MsgRequiredFields, Err: err}
	}
	attempt := paymentAttempt{
		flightID:   uc.flight.ID,
		seat:       uc.seat,
		passengers: uc.form.PassengerCount(),
		names:      uc.form.PassengerNames(),
		total:      domain.Total(uc.flight.BasePrice, uc.seat, uc.form.PassengerCount()),
	}
	uc.processing = true
	uc.setSaga(SagaIdle)
	uc.mu.Unlock()

	// An issued payment runs to completion even if the caller goes away.
	receipt, err := uc.runSaga(context.WithoutCancel(ctx), attempt)
	if err != nil {
		msg := paymentFailureMessage(err)
		uc.finish(SagaFailed, msg)
		uc.log.Warn().Err(err).Str("flight_id", attempt.flightID).Msg("payment failed")
		return Outcome{}, failure(msg, err)
	}

	target, err := navigation.ConfirmationTarget(navigation.Confirmation{
		FlightID:       attempt.flightID,
		SeatClass:      attempt.seat,
		Total:          attempt.total,
		BookingID:      receipt.BookingID,
		Passengers:     attempt.passengers,
		PassengerNames: attempt.names,
	})
	if err != nil {
		uc.finish(SagaConfirmed, "")
		return Outcome{}, fmt.Errorf("encode confirmation: %w", err)
	}

	uc.mu.Lock()
	uc.processing = false
	uc.setSaga(SagaConfirmed)
	uc.flight = nil
	uc.form = domain.NewPaymentForm()
	uc.mu.Unlock()

	uc.log.Info().
		Str("flight_id", attempt.flightID).
		Str("booking_id", receipt.BookingID).
		Int("passengers", attempt.passengers).
		Msg("payment confirmed")
	return Outcome{Redirect: uc.nav.Navigate(target)}, nil
}

// runSaga issues the two payment steps in order. Confirmation is never
// attempted unless the intent was created.
func (uc *paymentUseCase) runSaga(ctx context.Context, a paymentAttempt) (*domain.PaymentReceipt, error) {
	intent, err := uc.payments.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
		Amount:         a.total,
		Currency:       uc.currency,
		FlightID:       a.flightID,
		SeatClass:      a.seat,
		PassengerCount: a.passengers,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	if intent == nil || intent.ID == "" {
		return nil, errors.New("create payment intent: no intent id returned")
	}

	uc.mu.Lock()
	uc.setSaga(SagaIntentCreated)
	uc.mu.Unlock()

	receipt, err := uc.payments.ConfirmPayment(ctx, domain.PaymentConfirmation{
		IntentID:       intent.ID,
		FlightID:       a.flightID,
		SeatClass:      a.seat,
		PassengerCount: a.passengers,
		Amount:         a.total,
		PassengerNames: a.names,
	})
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return receipt, nil
}

func (uc *paymentUseCase) finish(state SagaState, msg string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.processing = false
	uc.lastError = msg
	uc.setSaga(state)
}

func (uc *paymentUseCase) setSaga(to SagaState) {
	uc.log.Debug().Str("from", string(uc.saga)).Str("to", string(to)).Msg("payment transition")
	uc.saga = to
}

func (uc *paymentUseCase) editableLocked() error {
	if uc.flight == nil {
		return domain.ErrViewNotLoaded
	}
	if uc.processing {
		return domain.ErrActionInProgress
	}
	return nil
}

func (uc *paymentUseCase) viewLocked() *PaymentView {
	f := uc.flight
	b := domain.NewPriceBreakdown(f.BasePrice, uc.seat, uc.form.PassengerCount())
	return &PaymentView{
		Flight:        NewFlightCard(*f, uc.display),
		SeatClass:     uc.seat,
		Breakdown:     b,
		Currency:      uc.currency,
		BasePriceText: "$" + domain.FormatAmount(b.BasePrice),
		UpchargeText:  domain.FormatUpcharge(b.Upcharge),
		TotalText:     "$" + domain.FormatAmount(b.Total),
		Form:          formView(uc.form),
		Processing:    uc.processing,
		Saga:          uc.saga,
		LastError:     uc.lastError,
	}
}

func formView(f *domain.PaymentForm) PaymentFormView {
	return PaymentFormView{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		Phone:          f.Phone,
		CardMasked:     maskCard(f.CardNumber),
		HasExpiry:      f.ExpiryDate != "",
		HasCVV:         f.CVV != "",
		BillingAddress: f.BillingAddress,
		City:           f.City,
		ZipCode:        f.ZipCode,
		PassengerCount: f.PassengerCount(),
		PassengerNames: f.PassengerNames(),
	}
}

// maskCard keeps the last four digits of a card number.
func maskCard(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	if len(digits) <= 4 {
		return "•••• " + digits
	}
	return "•••• " + digits[len(digits)-4:]
}
