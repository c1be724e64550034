package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	now := NewRealClock().Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock(t *testing.T) {
	fixed := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())

	clock.Advance(90 * time.Minute)
	assert.Equal(t, fixed.Add(90*time.Minute), clock.Now())

	later := fixed.AddDate(0, 1, 0)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-05-10T09:00:00Z")
	assert.Equal(t, time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() { NewMockClockFromString("yesterday") })
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	clock := NewMockClock(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
		}()
		go func() {
			defer wg.Done()
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Unix(50, 0), clock.Now())
}
