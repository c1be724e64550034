package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/flight-booking/flight-booking-client/internal/domain"
)

// ApplyCatalogQuery derives the visible catalog from the full flight list.
// It returns a new slice containing the flights that pass the search and
// status predicates, ordered by the query's sort key.
//
// Behavior:
//   - Always re-derives from flights; no earlier result is reused
//   - Filters first (search AND status), then sorts
//   - Sorting is stable, so equal keys keep their API order
//   - An unknown sort key keeps the filtered order
//   - Does NOT mutate the original flights slice
//
// Example usage:
//
//	q := domain.CatalogQuery{Search: "jfk", Status: "On Time", Sort: domain.SortByDeparture}
//	visible := ApplyCatalogQuery(flights, q)
func ApplyCatalogQuery(flights []domain.Flight, q domain.CatalogQuery) []domain.Flight {
	q = q.Normalize()

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if q.Matches(f) {
			result = append(result, f)
		}
	}

	SortFlights(result, q.Sort)
	return result
}

// SortFlights orders flights in place by the given key.
func SortFlights(flights []domain.Flight, by domain.SortOption) {
	switch by {
	case domain.SortByPrice:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].BasePrice < flights[j].BasePrice
		})
	case domain.SortByDeparture:
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].DepartureTime.Before(flights[j].DepartureTime)
		})
	case domain.SortByAirline:
		// Collators keep internal buffers, so each sort gets its own.
		c := collate.New(language.English)
		sort.SliceStable(flights, func(i, j int) bool {
			return c.CompareString(flights[i].Airline, flights[j].Airline) < 0
		})
	}
}

// StatusOptions lists the status filter values offered by the catalog.
func StatusOptions() []string {
	return []string{
		domain.StatusAll,
		string(domain.FlightOnTime),
		string(domain.FlightDelayed),
		string(domain.FlightCancelled),
	}
}
