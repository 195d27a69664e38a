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

type TicketReadStore struct {
	db db.DBTX
}

func NewTicketReadStore(db db.DBTX) *TicketReadStore {
	return &TicketReadStore{db: db}
}

func (r *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	const q = `
		SELECT id, user_id, requester_name, requester_email, category, product, subject, inquiry, image_ref, status, created_at, updated_at
		FROM tickets
		WHERE id = $1`

	var (
		view      queries.TicketView
		imageRef  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.UserID, &view.RequesterName, &view.RequesterEmail,
		&view.Category, &view.Product, &view.Subject, &view.Inquiry,
		&imageRef, &view.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get ticket by id", err)
	}
	view.ImageRef = pgconv.StringPtrFromPgtype(imageRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	replies, err := r.findReplies(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Replies = replies

	return &view, nil
}

func (r *TicketReadStore) findReplies(ctx context.Context, ticketID uuid.UUID) ([]queries.ReplyView, error) {
	const q = `
		SELECT id, message, created_at
		FROM ticket_replies
		WHERE ticket_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, ticketID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket replies", err)
	}
	defer rows.Close()

	// Empty slice, not nil: a fresh ticket serializes as "replies": [].
	replies := []queries.ReplyView{}
	for rows.Next() {
		var (
			reply     queries.ReplyView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&reply.ID, &reply.Message, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket reply", err)
		}
		reply.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket replies", err)
	}
	return replies, nil
}

func (r *TicketReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TicketListItem, error) {
	const q = `
		SELECT t.id, t.user_id, t.category, t.product, t.subject, t.status,
		       (SELECT count(*) FROM ticket_replies tr WHERE tr.ticket_id = t.id) AS reply_count,
		       t.created_at, t.updated_at
		FROM tickets t
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC`

	return r.listItems(ctx, q, userID)
}

func (r *TicketReadStore) FindAll(ctx context.Context) ([]*queries.TicketListItem, error) {
	const q = `
		SELECT t.id, t.user_id, t.category, t.product, t.subject, t.status,
		       (SELECT count(*) FROM ticket_replies tr WHERE tr.ticket_id = t.id) AS reply_count,
		       t.created_at, t.updated_at
		FROM tickets t
		ORDER BY t.created_at DESC`

	return r.listItems(ctx, q)
}

func (r *TicketReadStore) listItems(ctx context.Context, q string, args ...any) ([]*queries.TicketListItem, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tickets", err)
	}
	defer rows.Close()

	items := []*queries.TicketListItem{}
	for rows.Next() {
		var (
			item       queries.TicketListItem
			replyCount int64
			createdAt  pgtype.Timestamptz
			updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Category, &item.Product,
			&item.Subject, &item.Status, &replyCount, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket list item", err)
		}
		item.ReplyCount = int(replyCount)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tickets", err)
	}
	return items, nil
}
