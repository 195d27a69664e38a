//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"havenmart/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	now := at(10, 15)
	propertyID := uuid.New()
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := booking.NewBooking(now, propertyID, userID, at(11, 0), "second viewing")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, at(11, 0), actual.SlotStart())
		assert.Equal(t, "second viewing", actual.Note())
		assert.True(t, actual.IsOwnedBy(userID))
	})

	t.Run("trims the note", func(t *testing.T) {
		actual, err := booking.NewBooking(now, propertyID, userID, at(11, 0), "  hello  ")
		require.NoError(t, err)

		assert.Equal(t, "hello", actual.Note())
	})

	t.Run("rejects a slot the generator would not emit", func(t *testing.T) {
		actual, err := booking.NewBooking(now, propertyID, userID, at(11, 17), "")

		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrSlotNotBookable)
	})

	t.Run("rejects a past slot", func(t *testing.T) {
		_, err := booking.NewBooking(now, propertyID, userID, at(9, 30), "")

		require.ErrorIs(t, err, booking.ErrSlotNotBookable)
	})

	t.Run("rejects an overlong note", func(t *testing.T) {
		_, err := booking.NewBooking(now, propertyID, userID, at(11, 0), strings.Repeat("a", 201))

		require.ErrorIs(t, err, booking.ErrNoteTooLong)
	})
}
