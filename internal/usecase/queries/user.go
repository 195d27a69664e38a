package queries

import (
	"context"
	"errors"

	"havenmart/internal/infra"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserReadStore interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	view, err := q.store.FindProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
