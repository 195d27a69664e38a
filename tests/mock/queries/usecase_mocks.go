//go:build unit

package queriesmock

import (
	"context"

	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Use-case level mocks for handler tests.

type UserQueries struct {
	mock.Mock
}

func (m *UserQueries) GetProfile(ctx context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	args := m.Called(ctx, userID)
	view, _ := args.Get(0).(*queries.ProfileView)
	return view, args.Error(1)
}

type TicketQueries struct {
	mock.Mock
}

func (m *TicketQueries) GetByID(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*queries.TicketView, error) {
	args := m.Called(ctx, actorID, isAdmin, id)
	view, _ := args.Get(0).(*queries.TicketView)
	return view, args.Error(1)
}

func (m *TicketQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TicketListItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]*queries.TicketListItem)
	return items, args.Error(1)
}

func (m *TicketQueries) ListAll(ctx context.Context) ([]*queries.TicketListItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*queries.TicketListItem)
	return items, args.Error(1)
}
