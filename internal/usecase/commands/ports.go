package commands

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
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side repository ports. Methods taking a db.DBTX participate in the
// caller's transaction; the rest run on the pool.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TicketRepository interface {
	Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error)
	// Update refreshes updated_at; it is the only write that does.
	Update(ctx context.Context, id uuid.UUID, subject, inquiry string, imageRef *string, now time.Time) error
	AppendReply(ctx context.Context, tx db.DBTX, ticketID uuid.UUID, message string) error
	SetStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status ticket.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CartRepository interface {
	IncrementLine(ctx context.Context, userID, propertyID uuid.UUID, size string, delta int) error
	SetLine(ctx context.Context, userID, propertyID uuid.UUID, size string, quantity int) error
	MergeLines(ctx context.Context, userID uuid.UUID, lines cart.Lines) error
	Clear(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	SetStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type PropertyRepository interface {
	Create(ctx context.Context, p *catalog.Property) (uuid.UUID, error)
}

// Event payloads published after commit. Publishing is fire-and-forget:
// failures are logged, never surfaced to the client.

type OrderPlacedEvent struct {
	OrderID       uuid.UUID `json:"order_id"`
	UserID        uuid.UUID `json:"user_id"`
	AmountCents   int64     `json:"amount_cents"`
	PaymentMethod string    `json:"payment_method"`
	PlacedAt      time.Time `json:"placed_at"`
}

type TicketRepliedEvent struct {
	TicketID  uuid.UUID `json:"ticket_id"`
	UserID    uuid.UUID `json:"user_id"`
	Subject   string    `json:"subject"`
	RepliedAt time.Time `json:"replied_at"`
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	PublishTicketReplied(ctx context.Context, event TicketRepliedEvent) error
}
