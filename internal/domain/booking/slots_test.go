//go:build unit

package booking_test

import (
	"testing"
	"time"

	"havenmart/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestSchedule(t *testing.T) {
	t.Run("always returns a seven day window", func(t *testing.T) {
		days := booking.Schedule(at(10, 0))

		require.Len(t, days, booking.DayCount)
		for i, day := range days {
			assert.Equal(t, at(0, 0).AddDate(0, 0, i), day.Date)
		}
	})

	t.Run("day 0 first slot floors now+1h to the half hour", func(t *testing.T) {
		days := booking.Schedule(at(10, 15))

		require.NotEmpty(t, days[0].Slots)
		assert.Equal(t, at(11, 0), days[0].Slots[0].Start)
	})

	t.Run("day 0 first slot keeps the half past boundary", func(t *testing.T) {
		days := booking.Schedule(at(10, 45))

		require.NotEmpty(t, days[0].Slots)
		assert.Equal(t, at(11, 30), days[0].Slots[0].Start)
	})

	t.Run("day 0 never opens before 08:30", func(t *testing.T) {
		days := booking.Schedule(at(5, 0))

		require.NotEmpty(t, days[0].Slots)
		assert.Equal(t, at(8, 30), days[0].Slots[0].Start)
	})

	t.Run("day 0 is empty when the first slot would be at or past closing", func(t *testing.T) {
		days := booking.Schedule(at(19, 30))

		assert.Empty(t, days[0].Slots)
		assert.NotEmpty(t, days[1].Slots)
	})

	t.Run("slots step hourly and stop before 19:00", func(t *testing.T) {
		days := booking.Schedule(at(10, 15))

		slots := days[0].Slots
		require.NotEmpty(t, slots)
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, time.Hour, slots[i].Start.Sub(slots[i-1].Start))
		}
		last := slots[len(slots)-1].Start
		assert.True(t, last.Before(at(19, 0)))
		assert.False(t, last.Add(time.Hour).Before(at(19, 0)))
	})

	t.Run("later days run the full 08:30 to 18:30 range", func(t *testing.T) {
		days := booking.Schedule(at(18, 0))

		for i := 1; i < booking.DayCount; i++ {
			slots := days[i].Slots
			require.Len(t, slots, 11)
			assert.Equal(t, days[i].Date.Add(8*time.Hour+30*time.Minute), slots[0].Start)
			assert.Equal(t, days[i].Date.Add(18*time.Hour+30*time.Minute), slots[len(slots)-1].Start)
		}
	})
}

func TestBookable(t *testing.T) {
	now := at(10, 15)

	t.Run("accepts a slot the generator emits", func(t *testing.T) {
		assert.True(t, booking.Bookable(now, at(11, 0)))
		assert.True(t, booking.Bookable(now, at(8, 30).AddDate(0, 0, 3)))
	})

	t.Run("rejects a start in the past", func(t *testing.T) {
		assert.False(t, booking.Bookable(now, at(9, 30)))
	})

	t.Run("rejects an off-grid start", func(t *testing.T) {
		assert.False(t, booking.Bookable(now, at(11, 17)))
	})

	t.Run("rejects a start outside the seven day window", func(t *testing.T) {
		assert.False(t, booking.Bookable(now, at(8, 30).AddDate(0, 0, booking.DayCount)))
	})
}
