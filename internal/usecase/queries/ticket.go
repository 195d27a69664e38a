package queries

import (
	"context"

	"havenmart/internal/infra"
	"havenmart/internal/pkg/errs"

	"github.com/google/uuid"
)

type TicketReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error)
	FindAll(ctx context.Context) ([]*TicketListItem, error)
}

type TicketQueries interface {
	// GetByID enforces ownership: admins see everything, requesters only
	// their own tickets.
	GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*TicketView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error)
	ListAll(ctx context.Context) ([]*TicketListItem, error)
}

type ticketQueriesImpl struct {
	store TicketReadStore
}

func NewTicketQueries(store TicketReadStore) TicketQueries {
	return &ticketQueriesImpl{store: store}
}

func (q *ticketQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*TicketView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	if !isAdmin && view.UserID != actorID {
		return nil, errs.ErrTicketForbidden
	}
	return view, nil
}

func (q *ticketQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TicketListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *ticketQueriesImpl) ListAll(ctx context.Context) ([]*TicketListItem, error) {
	return q.store.FindAll(ctx)
}
