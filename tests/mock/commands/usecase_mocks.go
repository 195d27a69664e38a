//go:build unit

package commandsmock

import (
	"context"

	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/user"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Use-case level mocks for handler tests.

type AuthCommands struct {
	mock.Mock
}

func (m *AuthCommands) Register(ctx context.Context, params commands.RegisterParams) (*commands.LoginResult, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).(*commands.LoginResult)
	return result, args.Error(1)
}

func (m *AuthCommands) Login(ctx context.Context, credentials user.Credentials, guestCart cart.Lines) (*commands.LoginResult, error) {
	args := m.Called(ctx, credentials, guestCart)
	result, _ := args.Get(0).(*commands.LoginResult)
	return result, args.Error(1)
}

func (m *AuthCommands) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	args := m.Called(tokenString)
	id, _ := args.Get(0).(uuid.UUID)
	role, _ := args.Get(1).(user.Role)
	return id, role, args.Error(2)
}

type TicketCommands struct {
	mock.Mock
}

func (m *TicketCommands) Create(ctx context.Context, params commands.CreateTicketParams) (*queries.TicketView, error) {
	args := m.Called(ctx, params)
	view, _ := args.Get(0).(*queries.TicketView)
	return view, args.Error(1)
}

func (m *TicketCommands) Update(ctx context.Context, actorID, ticketID uuid.UUID, params commands.UpdateTicketParams) (*queries.TicketView, error) {
	args := m.Called(ctx, actorID, ticketID, params)
	view, _ := args.Get(0).(*queries.TicketView)
	return view, args.Error(1)
}

func (m *TicketCommands) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, ticketID uuid.UUID) error {
	return m.Called(ctx, actorID, isAdmin, ticketID).Error(0)
}

func (m *TicketCommands) Reply(ctx context.Context, ticketID uuid.UUID, message string) (*queries.TicketView, error) {
	args := m.Called(ctx, ticketID, message)
	view, _ := args.Get(0).(*queries.TicketView)
	return view, args.Error(1)
}
