package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	Street    string    `json:"street,omitempty"`
	Apartment string    `json:"apartment,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserCountResponse struct {
	Count int64 `json:"count"`
}

func UserToResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		Street:    u.Street,
		Apartment: u.Apartment,
		Zip:       u.Zip,
		City:      u.City,
		Country:   u.Country,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func UsersToResponse(users []*entity.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserToResponse(u))
	}
	return result
}
