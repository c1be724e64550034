package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/session"
)

var testDeparture = time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC)

// createTestFlight creates a flight for testing with the given parameters.
func createTestFlight(id, airline string, price float64, departOffset time.Duration) domain.Flight {
	dep := testDeparture.Add(departOffset)
	return domain.Flight{
		ID:            id,
		Airline:       airline,
		FlightNumber:  "FL-" + id,
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(5*time.Hour + 40*time.Minute),
		BasePrice:     price,
		Status:        domain.FlightOnTime,
	}
}

func flightIDs(flights []domain.Flight) []string {
	ids := make([]string, len(flights))
	for i, f := range flights {
		ids[i] = f.ID
	}
	return ids
}

func cardIDs(cards []FlightCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func manyFlights(n int) []domain.Flight {
	flights := make([]domain.Flight, n)
	for i := range flights {
		flights[i] = createTestFlight(strconv.Itoa(i), "Airline "+strconv.Itoa(n-i), float64(100+(i*37)%500), time.Duration(i)*time.Hour)
	}
	return flights
}

// fakeNavigator records every navigation.
type fakeNavigator struct {
	mu      sync.Mutex
	path    string
	visited []string
}

func newFakeNavigator() *fakeNavigator {
	return &fakeNavigator{path: "/"}
}

func (n *fakeNavigator) Navigate(target string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.path = target
	n.visited = append(n.visited, target)
	return target
}

func (n *fakeNavigator) Path() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.path
}

func (n *fakeNavigator) Visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.visited))
	copy(out, n.visited)
	return out
}

// fakeSession is an in-memory credential holder.
type fakeSession struct {
	token     string
	loginErr  error
	logoutErr error
}

func (s *fakeSession) Login(_ context.Context, token string) error {
	if s.loginErr != nil {
		return s.loginErr
	}
	s.token = token
	return nil
}

func (s *fakeSession) Logout(_ context.Context) error {
	s.token = ""
	return s.logoutErr
}

func (s *fakeSession) Navbar() session.Navbar {
	auth := s.token != ""
	return session.Navbar{Authenticated: auth, Links: session.NavLinks(auth)}
}
