package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOption_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		option SortOption
		want   bool
	}{
		{name: "price is valid", option: SortByPrice, want: true},
		{name: "departure is valid", option: SortByDeparture, want: true},
		{name: "airline is valid", option: SortByAirline, want: true},
		{name: "invalid option", option: SortOption("duration"), want: false},
		{name: "empty option", option: SortOption(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SortOption
	}{
		{name: "empty defaults to price", input: "", expected: SortByPrice},
		{name: "parse price", input: "price", expected: SortByPrice},
		{name: "parse departure uppercase", input: "DEPARTURE", expected: SortByDeparture},
		{name: "parse airline", input: "airline", expected: SortByAirline},
		{name: "unknown kept", input: "duration", expected: SortOption("duration")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortOption(tt.input))
		})
	}
}

func TestCatalogQuery_Normalize(t *testing.T) {
	assert.Equal(t, DefaultCatalogQuery(), CatalogQuery{}.Normalize())

	q := CatalogQuery{Search: "x", Status: "Delayed", Sort: SortByAirline}.Normalize()
	assert.Equal(t, "Delayed", q.Status)
	assert.Equal(t, SortByAirline, q.Sort)
}

func TestCatalogQuery_Matches(t *testing.T) {
	delta := Flight{Airline: "Delta", Origin: "JFK", Destination: "LAX", Status: FlightOnTime}
	united := Flight{Airline: "United", Origin: "SFO", Destination: "ORD", Status: FlightDelayed}

	tests := []struct {
		name  string
		query CatalogQuery
		want  []bool
	}{
		{name: "default matches all", query: DefaultCatalogQuery(), want: []bool{true, true}},
		{name: "text only", query: CatalogQuery{Search: "sfo", Status: StatusAll}, want: []bool{false, true}},
		{name: "status only", query: CatalogQuery{Status: "On Time"}, want: []bool{true, false}},
		{name: "text and status must both hold", query: CatalogQuery{Search: "delta", Status: "Delayed"}, want: []bool{false, false}},
		{name: "status is exact", query: CatalogQuery{Status: "delayed"}, want: []bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want[0], tt.query.Matches(delta))
			assert.Equal(t, tt.want[1], tt.query.Matches(united))
		})
	}
}
