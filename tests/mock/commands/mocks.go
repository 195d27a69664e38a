//go:build unit

// Package commandsmock provides hand-written testify mocks for the
// write-side ports.
package commandsmock

import (
	"context"
	"time"

	"havenmart/internal/domain/booking"
	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/catalog"
	"havenmart/internal/domain/order"
	"havenmart/internal/domain/ticket"
	"havenmart/internal/domain/user"
	"havenmart/internal/infra/db"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	view, _ := args.Get(0).(*queries.AuthorizedUserView)
	return view, args.String(1), args.Error(2)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.AuthorizedUserView)
	return view, args.Error(1)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error) {
	args := m.Called(ctx, t)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *TicketRepository) Update(ctx context.Context, id uuid.UUID, subject, inquiry string, imageRef *string, now time.Time) error {
	return m.Called(ctx, id, subject, inquiry, imageRef, now).Error(0)
}

func (m *TicketRepository) AppendReply(ctx context.Context, tx db.DBTX, ticketID uuid.UUID, message string) error {
	return m.Called(ctx, tx, ticketID, message).Error(0)
}

func (m *TicketRepository) SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status ticket.Status) error {
	return m.Called(ctx, tx, id, status).Error(0)
}

func (m *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) IncrementLine(ctx context.Context, userID, propertyID uuid.UUID, size string, delta int) error {
	return m.Called(ctx, userID, propertyID, size, delta).Error(0)
}

func (m *CartRepository) SetLine(ctx context.Context, userID, propertyID uuid.UUID, size string, quantity int) error {
	return m.Called(ctx, userID, propertyID, size, quantity).Error(0)
}

func (m *CartRepository) MergeLines(ctx context.Context, userID uuid.UUID, lines cart.Lines) error {
	return m.Called(ctx, userID, lines).Error(0)
}

func (m *CartRepository) Clear(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	return m.Called(ctx, tx, userID).Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	args := m.Called(ctx, tx, o)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *OrderRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type BookingRepository struct {
	mock.Mock
}

func (m *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, b)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *BookingRepository) FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	owner, _ := args.Get(0).(uuid.UUID)
	return owner, args.Error(1)
}

func (m *BookingRepository) SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

type PropertyRepository struct {
	mock.Mock
}

func (m *PropertyRepository) Create(ctx context.Context, p *catalog.Property) (uuid.UUID, error) {
	args := m.Called(ctx, p)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderPlaced(ctx context.Context, event commands.OrderPlacedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventPublisher) PublishTicketReplied(ctx context.Context, event commands.TicketRepliedEvent) error {
	return m.Called(ctx, event).Error(0)
}
