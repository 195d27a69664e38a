package queries

import (
	"context"

	"havenmart/internal/domain/booking"
	"havenmart/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	// Slots is derived state: recomputed per call, never persisted.
	Slots() []booking.DaySchedule
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clock}
}

func (q *bookingQueriesImpl) Slots() []booking.DaySchedule {
	return booking.Schedule(q.clock.Now())
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByUserID(ctx, userID)
}
