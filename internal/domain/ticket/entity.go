package ticket

import (
	"time"

	"havenmart/internal/domain/catalog"

	"github.com/google/uuid"
)

// Reply is immutable once appended to a ticket.
type Reply struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
}

type Ticket struct {
	id             uuid.UUID
	requesterID    uuid.UUID
	requesterName  string
	requesterEmail string
	category       catalog.Category
	product        string
	subject        Subject
	inquiry        Inquiry
	imageRef       *string
	status         Status
	replies        []Reply
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	requesterID uuid.UUID,
	requesterName, requesterEmail string,
	category catalog.Category,
	product string,
	subject Subject,
	inquiry Inquiry,
	imageRef *string,
) (*Ticket, error) {
	if !category.HasProduct(product) {
		return nil, catalog.ErrUnknownProduct
	}

	return &Ticket{
		id:             uuid.New(),
		requesterID:    requesterID,
		requesterName:  requesterName,
		requesterEmail: requesterEmail,
		category:       category,
		product:        product,
		subject:        subject,
		inquiry:        inquiry,
		imageRef:       imageRef,
		status:         StatusPending,
	}, nil
}

func ReconstructTicket(
	id, requesterID uuid.UUID,
	requesterName, requesterEmail string,
	category catalog.Category,
	product string,
	subject Subject,
	inquiry Inquiry,
	imageRef *string,
	status Status,
	replies []Reply,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:             id,
		requesterID:    requesterID,
		requesterName:  requesterName,
		requesterEmail: requesterEmail,
		category:       category,
		product:        product,
		subject:        subject,
		inquiry:        inquiry,
		imageRef:       imageRef,
		status:         status,
		replies:        replies,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (t *Ticket) ID() uuid.UUID              { return t.id }
func (t *Ticket) RequesterID() uuid.UUID     { return t.requesterID }
func (t *Ticket) RequesterName() string      { return t.requesterName }
func (t *Ticket) RequesterEmail() string     { return t.requesterEmail }
func (t *Ticket) Category() catalog.Category { return t.category }
func (t *Ticket) Product() string            { return t.product }
func (t *Ticket) Subject() Subject           { return t.subject }
func (t *Ticket) Inquiry() Inquiry           { return t.inquiry }
func (t *Ticket) ImageRef() *string          { return t.imageRef }
func (t *Ticket) Status() Status             { return t.status }
func (t *Ticket) Replies() []Reply           { return t.replies }
func (t *Ticket) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }

func (t *Ticket) IsOwnedBy(userID uuid.UUID) bool {
	return t.requesterID == userID
}
