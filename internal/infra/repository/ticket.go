package repository

import (
	"context"
	"time"

	"havenmart/internal/domain/ticket"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TicketRepository struct {
	db db.DBTX
}

func NewTicketRepository(db db.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error) {
	// updated_at is set equal to created_at so the first edit is allowed
	// exactly 24h after creation.
	const q = `
		INSERT INTO tickets (id, user_id, requester_name, requester_email, category, product, subject, inquiry, image_ref, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		t.ID(),
		t.RequesterID(),
		t.RequesterName(),
		t.RequesterEmail(),
		t.Category().String(),
		t.Product(),
		t.Subject().Value(),
		t.Inquiry().Value(),
		pgconv.StringPtrToPgtype(t.ImageRef()),
		string(t.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err, infra.ClassifyPgError(err))
	}
	return id, nil
}

func (r *TicketRepository) Update(ctx context.Context, id uuid.UUID, subject, inquiry string, imageRef *string, now time.Time) error {
	const q = `
		UPDATE tickets
		SET subject = $2, inquiry = $3, image_ref = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, subject, inquiry, pgconv.StringPtrToPgtype(imageRef), pgconv.TimeToPgtype(now))
	if err != nil {
		return infra.WrapRepoErr("failed to update ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) AppendReply(ctx context.Context, tx db.DBTX, ticketID uuid.UUID, message string) error {
	const q = `
		INSERT INTO ticket_replies (ticket_id, message)
		VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, q, ticketID, message); err != nil {
		return infra.WrapRepoErr("failed to append reply", err, infra.ClassifyPgError(err))
	}
	return nil
}

func (r *TicketRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status ticket.Status) error {
	// Deliberately leaves updated_at alone; only user edits move the
	// cooldown baseline.
	const q = `UPDATE tickets SET status = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to set ticket status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM tickets WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket not found", nil, infra.KindNotFound)
	}
	return nil
}
