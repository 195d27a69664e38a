package request

import (
	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/user"
	"havenmart/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToParams() commands.RegisterParams {
	return commands.RegisterParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// GuestCartLine mirrors the client's session cart so it can be merged on
// login.
type GuestCartLine struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Size       string    `json:"size" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required"`
}

type LoginRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required"`
	GuestCart []GuestCartLine `json:"guest_cart" binding:"omitempty,dive"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

func (r *LoginRequest) GuestCartLines() cart.Lines {
	lines := cart.Lines{}
	for _, l := range r.GuestCart {
		if l.Quantity <= 0 {
			continue
		}
		if lines[l.PropertyID] == nil {
			lines[l.PropertyID] = map[string]int{}
		}
		lines[l.PropertyID][l.Size] += l.Quantity
	}
	return lines
}
