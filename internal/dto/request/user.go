package request

// UpdateUserRequest carries optional fields; nil means leave unchanged
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	IsAdmin *bool   `json:"is_admin,omitempty"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
