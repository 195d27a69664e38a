package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	return q.store.FindByUserID(ctx, userID)
}
