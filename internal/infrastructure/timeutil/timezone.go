package timeutil

import (
	"fmt"
	"sync"
	"time"
)

var locationCache sync.Map

// UTC is the default display zone.
const UTC = "UTC"

// Itinerary layouts.
const (
	LayoutTime     = "15:04"
	LayoutDate     = "Mon, Jan 2, 2006"
	LayoutDateTime = "Jan 2, 2006 15:04"
	LayoutISODate  = "2006-01-02"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// ClearLocationCache drops cached locations. Tests only.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}

// Display renders API timestamps in one configured zone.
type Display struct {
	loc *time.Location
}

// NewDisplay loads the named zone for display.
func NewDisplay(timezone string) (*Display, error) {
	if timezone == "" {
		timezone = UTC
	}
	loc, err := GetLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Display{loc: loc}, nil
}

// UTCDisplay renders in UTC.
func UTCDisplay() *Display {
	return &Display{loc: time.UTC}
}

// Location returns the display zone.
func (d *Display) Location() *time.Location {
	return d.loc
}

// Time formats t as HH:MM in the display zone.
func (d *Display) Time(t time.Time) string {
	return t.In(d.loc).Format(LayoutTime)
}

// Date formats t as "Mon, Jan 2, 2006" in the display zone.
func (d *Display) Date(t time.Time) string {
	return t.In(d.loc).Format(LayoutDate)
}

// DateTime formats t as "Jan 2, 2006 15:04" in the display zone.
// The zero time renders as an empty string.
func (d *Display) DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(d.loc).Format(LayoutDateTime)
}

// ISODate formats t as YYYY-MM-DD in the display zone.
func (d *Display) ISODate(t time.Time) string {
	return t.In(d.loc).Format(LayoutISODate)
}
