package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func CategoryToResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func CategoriesToResponse(categories []*entity.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, CategoryToResponse(c))
	}
	return result
}
