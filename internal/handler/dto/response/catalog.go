package response

import "havenmart/internal/usecase/queries"

type PropertyResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Product     string  `json:"product"`
	PriceCents  int64   `json:"price_cents"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"image_url,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	return &PropertyResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		Product:     v.Product,
		PriceCents:  v.PriceCents,
		Location:    v.Location,
		ImageURL:    v.ImageURL,
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func FromPropertyList(views []*queries.PropertyView) []*PropertyResponse {
	res := make([]*PropertyResponse, len(views))
	for i, v := range views {
		res[i] = FromPropertyView(v)
	}
	return res
}
