package readstore

import (
	"context"

	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	const q = `
		SELECT b.id, b.property_id, p.title, b.slot_start, b.note, b.status, b.created_at
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.user_id = $1
		ORDER BY b.slot_start`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		var (
			view      queries.BookingView
			slotStart pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.PropertyID, &view.PropertyTitle,
			&slotStart, &view.Note, &view.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		view.SlotStart = pgconv.TimeFromPgtype(slotStart)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}
