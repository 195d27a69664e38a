package request

import "github.com/google/uuid"

type AddCartLineRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Size       string    `json:"size" binding:"required"`
}

type SetCartLineRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Size       string    `json:"size" binding:"required"`
	Quantity   *int      `json:"quantity" binding:"required,min=0"`
}
