package response

import "havenmart/internal/usecase/queries"

type OrderLineResponse struct {
	PropertyID     string `json:"property_id"`
	Size           string `json:"size"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	Lines         []OrderLineResponse `json:"lines"`
	AmountCents   int64               `json:"amount_cents"`
	Street        string              `json:"street"`
	City          string              `json:"city"`
	Zip           string              `json:"zip"`
	Country       string              `json:"country"`
	Phone         string              `json:"phone"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CreatedAt     int64               `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{
			PropertyID:     l.PropertyID.String(),
			Size:           l.Size,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		Lines:         lines,
		AmountCents:   v.AmountCents,
		Street:        v.Street,
		City:          v.City,
		Zip:           v.Zip,
		Country:       v.Country,
		Phone:         v.Phone,
		PaymentMethod: v.PaymentMethod,
		PaymentStatus: v.PaymentStatus,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt.Unix(),
	}
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}
