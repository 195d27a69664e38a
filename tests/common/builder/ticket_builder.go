//go:build unit || e2e

package builder

import (
	"time"

	"havenmart/internal/domain/catalog"
	domticket "havenmart/internal/domain/ticket"
	reqdto "havenmart/internal/handler/dto/request"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	RequesterID    uuid.UUID
	RequesterName  string
	RequesterEmail string
	Category       string
	Product        string
	Subject        string
	Inquiry        string
	ImageRef       *string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewTicketBuilder() *TicketBuilder {
	now := time.Now()
	return &TicketBuilder{
		RequesterID:    uuid.New(),
		RequesterName:  "Test Requester",
		RequesterEmail: "requester@example.com",
		Category:       catalog.CategoryResidential.String(),
		Product:        "Apartment",
		Subject:        "Broken listing photos",
		Inquiry:        "The photos on my listing no longer load.",
		Status:         domticket.StatusPending.String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (t *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(t)
	return t
}

// Build methods
func (t *TicketBuilder) BuildDomain() (*domticket.Ticket, error) {
	category, err := catalog.NewCategory(t.Category)
	if err != nil {
		return nil, err
	}
	subject, err := domticket.NewSubject(t.Subject)
	if err != nil {
		return nil, err
	}
	inquiry, err := domticket.NewInquiry(t.Inquiry)
	if err != nil {
		return nil, err
	}
	return domticket.NewTicket(t.RequesterID, t.RequesterName, t.RequesterEmail, category, t.Product, subject, inquiry, t.ImageRef)
}

func (t *TicketBuilder) BuildCreateRequestDTO() reqdto.CreateTicketRequest {
	return reqdto.CreateTicketRequest{
		Category: t.Category,
		Product:  t.Product,
		Subject:  t.Subject,
		Inquiry:  t.Inquiry,
	}
}

func (t *TicketBuilder) BuildUpdateRequestDTO() reqdto.UpdateTicketRequest {
	subject := t.Subject
	inquiry := t.Inquiry
	return reqdto.UpdateTicketRequest{
		Subject: &subject,
		Inquiry: &inquiry,
	}
}

func (t *TicketBuilder) BuildView() *queries.TicketView {
	return &queries.TicketView{
		ID:             uuid.New(),
		UserID:         t.RequesterID,
		RequesterName:  t.RequesterName,
		RequesterEmail: t.RequesterEmail,
		Category:       t.Category,
		Product:        t.Product,
		Subject:        t.Subject,
		Inquiry:        t.Inquiry,
		ImageRef:       t.ImageRef,
		Status:         t.Status,
		Replies:        []queries.ReplyView{},
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (t *TicketBuilder) BuildListItem() *queries.TicketListItem {
	return &queries.TicketListItem{
		ID:        uuid.New(),
		UserID:    t.RequesterID,
		Category:  t.Category,
		Product:   t.Product,
		Subject:   t.Subject,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// Fluent builder methods
func (t *TicketBuilder) WithRequesterID(id uuid.UUID) *TicketBuilder {
	t.RequesterID = id
	return t
}

func (t *TicketBuilder) WithCategory(category string) *TicketBuilder {
	t.Category = category
	return t
}

func (t *TicketBuilder) WithProduct(product string) *TicketBuilder {
	t.Product = product
	return t
}

func (t *TicketBuilder) WithSubject(subject string) *TicketBuilder {
	t.Subject = subject
	return t
}

func (t *TicketBuilder) WithInquiry(inquiry string) *TicketBuilder {
	t.Inquiry = inquiry
	return t
}

func (t *TicketBuilder) WithImageRef(ref string) *TicketBuilder {
	t.ImageRef = &ref
	return t
}

func (t *TicketBuilder) AsResolved() *TicketBuilder {
	t.Status = domticket.StatusResolved.String()
	return t
}
