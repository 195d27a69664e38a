package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotNotBookable = errors.New("slot is not bookable")
	ErrAlreadyCanceled = errors.New("booking is already canceled")
	ErrNoteTooLong     = errors.New("note exceeds 200 characters")
)

const noteMaxLen = 200

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// Booking is a persisted viewing appointment for a property. The slot must
// be one the generator would emit for the caller's "now".
type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	userID     uuid.UUID
	slotStart  time.Time
	note       string
	status     Status
	createdAt  time.Time
}

func NewBooking(now time.Time, propertyID, userID uuid.UUID, slotStart time.Time, note string) (*Booking, error) {
	if !Bookable(now, slotStart) {
		return nil, ErrSlotNotBookable
	}
	note = strings.TrimSpace(note)
	if len([]rune(note)) > noteMaxLen {
		return nil, ErrNoteTooLong
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		userID:     userID,
		slotStart:  slotStart,
		note:       note,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, propertyID, userID uuid.UUID,
	slotStart time.Time,
	note string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		userID:     userID,
		slotStart:  slotStart,
		note:       note,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) SlotStart() time.Time  { return b.slotStart }
func (b *Booking) Note() string          { return b.note }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}
