package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines        = errors.New("order has no lines")
	ErrInvalidLine    = errors.New("order line is invalid")
	ErrNegativeAmount = errors.New("order amount cannot be negative")
	ErrAlreadyPaid    = errors.New("order is already paid")
)

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentStripe PaymentMethod = "stripe"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCOD || m == PaymentStripe
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCanceled  Status = "canceled"
)

// Line snapshots the unit price at checkout so later catalog changes do
// not rewrite history.
type Line struct {
	PropertyID     uuid.UUID
	Size           string
	Quantity       int
	UnitPriceCents int64
}

type Address struct {
	Street  string
	City    string
	Zip     string
	Country string
	Phone   string
}

type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	lines         []Line
	amountCents   int64
	address       Address
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	status        Status
	createdAt     time.Time
}

func NewOrder(userID uuid.UUID, lines []Line, address Address, method PaymentMethod) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var amount int64
	for _, l := range lines {
		if l.Quantity <= 0 || l.UnitPriceCents < 0 {
			return nil, ErrInvalidLine
		}
		amount += l.UnitPriceCents * int64(l.Quantity)
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	return &Order{
		id:            uuid.New(),
		userID:        userID,
		lines:         lines,
		amountCents:   amount,
		address:       address,
		paymentMethod: method,
		paymentStatus: PaymentPending,
		status:        StatusPlaced,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	lines []Line,
	amountCents int64,
	address Address,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:            id,
		userID:        userID,
		lines:         lines,
		amountCents:   amountCents,
		address:       address,
		paymentMethod: method,
		paymentStatus: paymentStatus,
		status:        status,
		createdAt:     createdAt,
	}
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) AmountCents() int64           { return o.amountCents }
func (o *Order) Address() Address             { return o.address }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Status() Status               { return o.status }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
