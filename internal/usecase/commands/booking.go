package commands

import (
	"context"
	"time"

	"havenmart/internal/domain/booking"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/clock"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCommands interface {
	// Book reserves a viewing slot. The slot must be one the schedule
	// currently offers.
	Book(ctx context.Context, userID, propertyID uuid.UUID, slotStart time.Time, note string) (uuid.UUID, error)
	Cancel(ctx context.Context, actorID uuid.UUID, isAdmin bool, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	properties  queries.PropertyReadStore
	clock       clock.Clock
}

func NewBookingCommands(bookingRepo BookingRepository, properties queries.PropertyReadStore, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{bookingRepo: bookingRepo, properties: properties, clock: clock}
}

func (b *bookingCommandsImpl) Book(ctx context.Context, userID, propertyID uuid.UUID, slotStart time.Time, note string) (uuid.UUID, error) {
	if _, err := b.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrPropertyNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(b.clock.Now(), propertyID, userID, slotStart, note)
	if err != nil {
		if errs.Is(err, booking.ErrSlotNotBookable) {
			return uuid.Nil, errs.ErrSlotNotBookable
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := b.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Someone else took the same slot for the same property.
			return uuid.Nil, errs.ErrSlotNotBookable
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, actorID uuid.UUID, isAdmin bool, bookingID uuid.UUID) error {
	ownerID, err := b.bookingRepo.FindOwner(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !isAdmin && ownerID != actorID {
		return errs.ErrBookingNotFound
	}

	if err := b.bookingRepo.SetStatus(ctx, bookingID, booking.StatusCanceled); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
