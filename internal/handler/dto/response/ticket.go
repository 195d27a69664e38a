package response

import (
	"time"

	"havenmart/internal/usecase/queries"
)

type ReplyResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"created_at"`
}

type TicketResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	RequesterName  string          `json:"requester_name"`
	RequesterEmail string          `json:"requester_email"`
	Category       string          `json:"category"`
	Product        string          `json:"product"`
	Subject        string          `json:"subject"`
	Inquiry        string          `json:"inquiry"`
	ImageRef       *string         `json:"image_ref,omitempty"`
	Status         string          `json:"status"`
	Replies        []ReplyResponse `json:"replies"`
	CreatedAt      int64           `json:"created_at"`
	UpdatedAt      int64           `json:"updated_at"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	replies := make([]ReplyResponse, len(v.Replies))
	for i, r := range v.Replies {
		replies[i] = ReplyResponse{
			ID:        r.ID.String(),
			Message:   r.Message,
			CreatedAt: r.CreatedAt.Unix(),
		}
	}
	return &TicketResponse{
		ID:             v.ID.String(),
		UserID:         v.UserID.String(),
		RequesterName:  v.RequesterName,
		RequesterEmail: v.RequesterEmail,
		Category:       v.Category,
		Product:        v.Product,
		Subject:        v.Subject,
		Inquiry:        v.Inquiry,
		ImageRef:       v.ImageRef,
		Status:         v.Status,
		Replies:        replies,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
}

type TicketListItemResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Category   string `json:"category"`
	Product    string `json:"product"`
	Subject    string `json:"subject"`
	Status     string `json:"status"`
	ReplyCount int    `json:"reply_count"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromTicketList(items []*queries.TicketListItem) []*TicketListItemResponse {
	res := make([]*TicketListItemResponse, len(items))
	for i, it := range items {
		res[i] = &TicketListItemResponse{
			ID:         it.ID.String(),
			UserID:     it.UserID.String(),
			Category:   it.Category,
			Product:    it.Product,
			Subject:    it.Subject,
			Status:     it.Status,
			ReplyCount: it.ReplyCount,
			CreatedAt:  it.CreatedAt.Unix(),
			UpdatedAt:  it.UpdatedAt.Unix(),
		}
	}
	return res
}

// CooldownResponse tells the client exactly when the next edit becomes
// possible.
type CooldownResponse struct {
	NextAllowedAt string `json:"next_allowed_at"`
}

func NewCooldownResponse(nextAllowedAt time.Time) CooldownResponse {
	return CooldownResponse{NextAllowedAt: nextAllowedAt.UTC().Format(time.RFC3339)}
}
