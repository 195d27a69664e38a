package request

import "havenmart/internal/usecase/commands"

type AddPropertyRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Category    string  `json:"category" binding:"required"`
	Product     string  `json:"product" binding:"required"`
	PriceCents  int64   `json:"price_cents" binding:"required,min=0"`
	Location    string  `json:"location" binding:"required,max=200"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
}

func (r *AddPropertyRequest) ToParams() commands.AddPropertyParams {
	return commands.AddPropertyParams{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Product:     r.Product,
		PriceCents:  r.PriceCents,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
	}
}
