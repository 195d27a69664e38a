package response

import "havenmart/internal/usecase/queries"

type CartLineResponse struct {
	PropertyID string `json:"property_id"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

type CartResponse struct {
	Lines       []CartLineResponse `json:"lines"`
	Count       int                `json:"count"`
	AmountCents int64              `json:"amount_cents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			PropertyID: l.PropertyID.String(),
			Size:       l.Size,
			Quantity:   l.Quantity,
		}
	}
	return &CartResponse{
		Lines:       lines,
		Count:       v.Count,
		AmountCents: v.AmountCents,
	}
}
