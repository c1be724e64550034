package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cast"

	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavLinks returns the navbar for the given authentication state.
func NavLinks(authenticated bool) []NavLink {
	links := []NavLink{{Label: "Home", Path: navigation.PathHome}}
	if authenticated {
		return append(links,
			NavLink{Label: "Dashboard", Path: navigation.PathDashboard},
			NavLink{Label: "My Trips", Path: navigation.PathMyTrips},
			NavLink{Label: "Logout", Path: navigation.PathLogout},
		)
	}
	return append(links,
		NavLink{Label: "Login", Path: navigation.PathLogin},
		NavLink{Label: "Register", Path: navigation.PathRegister},
	)
}

// Claims is the display identity read from an access token.
type Claims struct {
	Username  string     `json:"username,omitempty"`
	UserID    string     `json:"user_id,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ParseClaims decodes the token payload WITHOUT verifying its signature.
// The result is for display only and must never gate access.
func ParseClaims(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token claims: %w", err)
	}

	out := &Claims{
		Username: cast.ToString(claims["username"]),
		UserID:   cast.ToString(claims["user_id"]),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, nil
}

// Identity is the name shown in the navbar: username, else "user <id>".
func (c *Claims) Identity() string {
	switch {
	case c == nil:
		return ""
	case c.Username != "":
		return c.Username
	case c.UserID != "":
		return "user " + c.UserID
	default:
		return ""
	}
}

// Navbar is the guard state rendered on every view.
type Navbar struct {
	Authenticated bool      `json:"authenticated"`
	Identity      string    `json:"identity,omitempty"`
	Links         []NavLink `json:"links"`
}

// Navbar recomputes the guard state from the current token.
func (c *Context) Navbar() Navbar {
	token := c.Token()
	nb := Navbar{Authenticated: token != "", Links: NavLinks(token != "")}
	if token == "" {
		return nb
	}
	claims, err := ParseClaims(token)
	if err != nil {
		c.log.Debug().Err(err).Msg("token is not a readable jwt")
		return nb
	}
	nb.Identity = claims.Identity()
	return nb
}
