// Package navigation tracks the current view location and encodes the
// parameters handed from one view to the next.
package navigation

import (
	"net/url"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
)

// View paths.
const (
	PathHome         = "/"
	PathLogin        = "/login"
	PathRegister     = "/register"
	PathDashboard    = "/dashboard"
	PathPayment      = "/payment"
	PathConfirmation = "/booking-success"
	PathMyTrips      = "/my-trips"
	PathAdmin        = "/admin"
	PathLogout       = "/logout"
)

// Navigator holds the single current location of the client. Safe for
// concurrent use.
type Navigator struct {
	mu       sync.RWMutex
	location string
	log      *logger.Logger
}

// NewNavigator starts at the home view.
func NewNavigator(log *logger.Logger) *Navigator {
	if log == nil {
		log = logger.Nop()
	}
	return &Navigator{location: PathHome, log: log.WithComponent("navigation")}
}

// Location returns the full current target, including its query.
func (n *Navigator) Location() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.location
}

// Path returns the path portion of the current location.
func (n *Navigator) Path() string {
	return pathOf(n.Location())
}

// Navigate moves to target and returns it.
func (n *Navigator) Navigate(target string) string {
	n.mu.Lock()
	from := n.location
	n.location = target
	n.mu.Unlock()

	n.log.Debug().Str("from", pathOf(from)).Str("to", pathOf(target)).Msg("navigate")
	return target
}

// ForceLogin moves to the login view unless already there.
// It reports whether a navigation happened.
func (n *Navigator) ForceLogin() bool {
	n.mu.Lock()
	if pathOf(n.location) == PathLogin {
		n.mu.Unlock()
		return false
	}
	from := n.location
	n.location = PathLogin
	n.mu.Unlock()

	n.log.Info().Str("from", pathOf(from)).Msg("credential rejected, redirecting to login")
	return true
}

func pathOf(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		return target
	}
	return u.Path
}
