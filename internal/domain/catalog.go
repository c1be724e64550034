package domain

import "strings"

// SortOption defines the available sorting keys for the flight catalog.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by base price ascending (cheapest first, default)
	SortByPrice SortOption = "price"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"

	// SortByAirline sorts by airline name using locale-aware collation
	SortByAirline SortOption = "airline"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDeparture, SortByAirline:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty. Unknown keys are kept as-is and
// leave the filtered order untouched.
func ParseSortOption(s string) SortOption {
	if s == "" {
		return SortByPrice
	}
	return SortOption(strings.ToLower(s))
}

// StatusAll disables the status filter.
const StatusAll = "all"

// CatalogQuery is the search, filter and sort state of the catalog view.
type CatalogQuery struct {
	// Search is matched case-insensitively against airline, origin and destination
	Search string `json:"q"`

	// Status is "all" or an exact flight status
	Status string `json:"status"`

	// Sort is the ordering key
	Sort SortOption `json:"sort"`
}

// DefaultCatalogQuery returns the initial catalog state.
func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{Status: StatusAll, Sort: SortByPrice}
}

// Normalize fills empty fields with their defaults.
func (q CatalogQuery) Normalize() CatalogQuery {
	if q.Status == "" {
		q.Status = StatusAll
	}
	if q.Sort == "" {
		q.Sort = SortByPrice
	}
	return q
}

// Matches applies the search and status predicates (AND).
func (q CatalogQuery) Matches(f Flight) bool {
	if !f.MatchesText(q.Search) {
		return false
	}
	return q.Status == "" || q.Status == StatusAll || string(f.Status) == q.Status
}
