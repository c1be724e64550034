package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	again, err := GetLocation("America/New_York")
	require.NoError(t, err)
	assert.Same(t, loc, again)
}

func TestGetLocation_Invalid(t *testing.T) {
	ClearLocationCache()

	loc, err := GetLocation("Nowhere/Special")
	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "failed to load timezone")
}

func TestNewDisplay(t *testing.T) {
	d, err := NewDisplay("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", d.Location().String())

	_, err = NewDisplay("Nowhere/Special")
	assert.Error(t, err)
}

func TestDisplay_Formats(t *testing.T) {
	ts := time.Date(2026, 3, 14, 22, 5, 0, 0, time.UTC)

	utc := UTCDisplay()
	assert.Equal(t, "22:05", utc.Time(ts))
	assert.Equal(t, "Sat, Mar 14, 2026", utc.Date(ts))
	assert.Equal(t, "Mar 14, 2026 22:05", utc.DateTime(ts))
	assert.Equal(t, "2026-03-14", utc.ISODate(ts))
	assert.Equal(t, "", utc.DateTime(time.Time{}))

	tokyo, err := NewDisplay("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "07:05", tokyo.Time(ts))
	assert.Equal(t, "2026-03-15", tokyo.ISODate(ts))
}
