package repository

import (
	"context"

	"havenmart/internal/domain/booking"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, property_id, user_id, slot_start, note, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		b.ID(),
		b.PropertyID(),
		b.UserID(),
		pgconv.TimeToPgtype(b.SlotStart()),
		b.Note(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, infra.ClassifyPgError(err))
	}
	return id, nil
}

func (r *BookingRepository) FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	const q = `SELECT user_id FROM bookings WHERE id = $1`

	var ownerID uuid.UUID
	if err := r.db.QueryRow(ctx, q, id).Scan(&ownerID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find booking owner", err)
	}
	return ownerID, nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const q = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to set booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
