package request

// CreateTicketRequest arrives as multipart form data; the optional image
// file is handled separately by the handler.
type CreateTicketRequest struct {
	Category string `form:"category" binding:"required"`
	Product  string `form:"product" binding:"required"`
	Subject  string `form:"subject" binding:"required,max=80"`
	Inquiry  string `form:"inquiry" binding:"required,max=500"`
}

type UpdateTicketRequest struct {
	Subject  *string `json:"subject" binding:"omitempty,max=80"`
	Inquiry  *string `json:"inquiry" binding:"omitempty,max=500"`
	ImageRef *string `json:"image_ref" binding:"omitempty"`
}

type ReplyTicketRequest struct {
	TicketID string `json:"ticket_id" binding:"required,uuid"`
	Message  string `json:"message" binding:"required"`
}
