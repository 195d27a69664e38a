package request

import (
	"havenmart/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlaceOrderRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
}

func (r *PlaceOrderRequest) ToParams() commands.PlaceOrderParams {
	return commands.PlaceOrderParams{
		Street:  r.Street,
		City:    r.City,
		Zip:     r.Zip,
		Country: r.Country,
		Phone:   r.Phone,
	}
}

type VerifyStripeRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Success *bool     `json:"success" binding:"required"`
}
