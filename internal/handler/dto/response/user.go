package response

import "havenmart/internal/usecase/queries"

type ProfileResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	LastLogin *int64 `json:"last_login,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	var lastLogin *int64
	if v.LastLogin != nil {
		ts := v.LastLogin.Unix()
		lastLogin = &ts
	}
	return &ProfileResponse{
		ID:        v.ID.String(),
		Email:     v.Email,
		Name:      v.Name,
		Role:      v.Role,
		LastLogin: lastLogin,
		CreatedAt: v.CreatedAt.Unix(),
	}
}
