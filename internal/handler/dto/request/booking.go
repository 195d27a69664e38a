package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	SlotStart  time.Time `json:"slot_start" binding:"required"`
	Note       string    `json:"note" binding:"omitempty,max=200"`
}
