package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TicketView struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	RequesterName  string      `json:"requester_name"`
	RequesterEmail string      `json:"requester_email"`
	Category       string      `json:"category"`
	Product        string      `json:"product"`
	Subject        string      `json:"subject"`
	Inquiry        string      `json:"inquiry"`
	ImageRef       *string     `json:"image_ref,omitempty"`
	Status         string      `json:"status"`
	Replies        []ReplyView `json:"replies"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type ReplyView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketListItem struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Category   string    `json:"category"`
	Product    string    `json:"product"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PropertyView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Product     string    `json:"product"`
	PriceCents  int64     `json:"price_cents"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartLineView struct {
	PropertyID uuid.UUID `json:"property_id"`
	Size       string    `json:"size"`
	Quantity   int       `json:"quantity"`
}

type CartView struct {
	Lines       []CartLineView `json:"lines"`
	Count       int            `json:"count"`
	AmountCents int64          `json:"amount_cents"`
}

type OrderLineView struct {
	PropertyID     uuid.UUID `json:"property_id"`
	Size           string    `json:"size"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Lines         []OrderLineView `json:"lines"`
	AmountCents   int64           `json:"amount_cents"`
	Street        string          `json:"street"`
	City          string          `json:"city"`
	Zip           string          `json:"zip"`
	Country       string          `json:"country"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	SlotStart     time.Time `json:"slot_start"`
	Note          string    `json:"note"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type ProfileView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
