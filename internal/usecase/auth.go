package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
	"github.com/flight-booking/flight-booking-client/internal/session"
)

// Auth view messages.
const (
	MsgLoginFailed         = "Login failed"
	MsgRegistered          = "Registration successful! Wait for admin approval."
	MsgRegistrationFailed  = "Something went wrong. Try again!"
	MsgCredentialsRequired = "Username and password are required"
)

// AuthUseCase defines the login, registration and logout views.
type AuthUseCase interface {
	// Login exchanges credentials for an access token, persists it and
	// navigates to the dashboard.
	Login(ctx context.Context, creds domain.Credentials) (Outcome, error)

	// Register creates a pending account and navigates to the login view.
	Register(ctx context.Context, reg domain.Registration) (Outcome, error)

	// Logout clears the credential and navigates to the login view.
	Logout(ctx context.Context) (Outcome, error)

	// Navbar returns the navigation links for the current credential state.
	Navbar() session.Navbar
}

type authUseCase struct {
	api     domain.AuthAPI
	session Session
	nav     Navigator
	log     *logger.Logger
}

// NewAuthUseCase creates an AuthUseCase.
func NewAuthUseCase(api domain.AuthAPI, sess Session, nav Navigator, log *logger.Logger) AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &authUseCase{api: api, session: sess, nav: nav, log: log.WithComponent("auth")}
}

func (uc *authUseCase) Login(ctx context.Context, creds domain.Credentials) (Outcome, error) {
	uc.nav.Navigate(navigation.PathLogin)

	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return Outcome{}, &ViewError{Message: MsgCredentialsRequired, Err: domain.ErrMissingField}
	}

	token, err := uc.api.Login(ctx, creds)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", creds.Username).Msg("login failed")
		// A 401 here is a rejected password, not an expired session.
		return Outcome{}, &ViewError{Message: firstNonEmpty(domain.ServerDetail(err), MsgLoginFailed), Err: err}
	}

	if err := uc.session.Login(ctx, token); err != nil {
		return Outcome{}, fmt.Errorf("store credential: %w", err)
	}

	uc.log.Info().Str("username", creds.Username).Msg("logged in")
	return Outcome{Redirect: uc.nav.Navigate(navigation.PathDashboard)}, nil
}

func (uc *authUseCase) Register(ctx context.Context, reg domain.Registration) (Outcome, error) {
	uc.nav.Navigate(navigation.PathRegister)

	if err := uc.api.Register(ctx, reg); err != nil {
		uc.log.Warn().Err(err).Str("username", reg.Username).Msg("registration failed")
		return Outcome{}, failure(registrationFailureMessage(err), err)
	}

	uc.log.Info().Str("username", reg.Username).Msg("registered, awaiting approval")
	return Outcome{Redirect: uc.nav.Navigate(navigation.PathLogin), Message: MsgRegistered}, nil
}

// registrationFailureMessage echoes the raw server response when there is one.
func registrationFailureMessage(err error) string {
	apiErr, ok := domain.AsAPIError(err)
	if !ok || apiErr.StatusCode == 0 {
		return MsgRegistrationFailed
	}
	body := strings.TrimSpace(string(apiErr.Body))
	if body == "" {
		body = "null"
	}
	return "Error: " + body
}

func (uc *authUseCase) Logout(ctx context.Context) (Outcome, error) {
	err := uc.session.Logout(ctx)
	target := uc.nav.Navigate(navigation.PathLogin)
	if err != nil {
		uc.log.Error().Err(err).Msg("logout failed to clear stored credential")
		return Outcome{Redirect: target}, fmt.Errorf("clear credential: %w", err)
	}
	return Outcome{Redirect: target}, nil
}

func (uc *authUseCase) Navbar() session.Navbar {
	return uc.session.Navbar()
}
