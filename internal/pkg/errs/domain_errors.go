package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrPropertyNotFound = errors.New("property not found")
	ErrUnknownCategory  = errors.New("unknown category")

	// Ticket errors
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrTicketForbidden  = errors.New("ticket belongs to another user")
	ErrEditCooldown     = errors.New("ticket edit cooldown active")
	ErrInvalidTicket    = errors.New("invalid ticket")
	ErrInvalidImage     = errors.New("invalid ticket image")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotNotBookable = errors.New("slot not bookable")

	// Cart / order errors
	ErrEmptyCart        = errors.New("cart is empty")
	ErrUnknownCartLine  = errors.New("cart references unknown property")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
