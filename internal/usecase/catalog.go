package usecase

import (
	"context"
	"sync"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-booking/flight-booking-client/internal/navigation"
)

// MsgNoFlights is the catalog empty state.
const MsgNoFlights = "No flights found matching your criteria."

// CatalogView is the rendered dashboard flight list.
type CatalogView struct {
	Query         domain.CatalogQuery `json:"query"`
	Flights       []FlightCard        `json:"flights"`
	TotalCount    int                 `json:"total_count"`
	StatusOptions []string            `json:"status_options"`

	// EmptyMessage is set when no flight passes the query
	EmptyMessage string `json:"empty_message,omitempty"`
}

// CatalogUseCase defines the flight catalog view.
type CatalogUseCase interface {
	// Load fetches the flight list once for a dashboard activation and
	// renders it with the current query.
	Load(ctx context.Context) (*CatalogView, error)

	// Query re-derives the view from the loaded flights without a fetch.
	Query(q domain.CatalogQuery) (*CatalogView, error)

	// Flight looks a loaded flight up by id.
	Flight(id string) (domain.Flight, error)
}

type catalogUseCase struct {
	api     domain.FlightAPI
	nav     Navigator
	display *timeutil.Display
	log     *logger.Logger

	mu      sync.RWMutex
	loaded  bool
	flights []domain.Flight
	query   domain.CatalogQuery
}

// NewCatalogUseCase creates a CatalogUseCase.
func NewCatalogUseCase(api domain.FlightAPI, nav Navigator, display *timeutil.Display, log *logger.Logger) CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &catalogUseCase{
		api:     api,
		nav:     nav,
		display: display,
		log:     log.WithComponent("catalog"),
		query:   domain.DefaultCatalogQuery(),
	}
}

func (uc *catalogUseCase) Load(ctx context.Context) (*CatalogView, error) {
	uc.nav.Navigate(navigation.PathDashboard)

	flights, err := uc.api.ListFlights(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("failed to load flights")
		return nil, failure(loadFailureMessage("flights", err), err)
	}

	uc.mu.Lock()
	uc.flights = flights
	uc.loaded = true
	q := uc.query
	uc.mu.Unlock()

	uc.log.Debug().Int("count", len(flights)).Msg("flights loaded")
	return uc.render(flights, q), nil
}

func (uc *catalogUseCase) Query(q domain.CatalogQuery) (*CatalogView, error) {
	q = q.Normalize()

	uc.mu.Lock()
	if !uc.loaded {
		uc.mu.Unlock()
		return nil, domain.ErrViewNotLoaded
	}
	uc.query = q
	flights := uc.flights
	uc.mu.Unlock()

	return uc.render(flights, q), nil
}

func (uc *catalogUseCase) Flight(id string) (domain.Flight, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if !uc.loaded {
		return domain.Flight{}, domain.ErrViewNotLoaded
	}
	for _, f := range uc.flights {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.Flight{}, domain.ErrFlightUnavailable
}

// render derives the view from the full list. flights is never mutated after
// a load, so it is safe to read outside the lock.
func (uc *catalogUseCase) render(flights []domain.Flight, q domain.CatalogQuery) *CatalogView {
	visible := ApplyCatalogQuery(flights, q)
	view := &CatalogView{
		Query:         q,
		Flights:       newFlightCards(visible, uc.display),
		TotalCount:    len(flights),
		StatusOptions: StatusOptions(),
	}
	if len(visible) == 0 {
		view.EmptyMessage = MsgNoFlights
	}
	return view
}
