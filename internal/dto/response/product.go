package response

import (
	"time"

	"ecommerce-api/internal/data/entity"
)

type ProductResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	RichDescription string            `json:"rich_description,omitempty"`
	Image           string            `json:"image,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Brand           string            `json:"brand,omitempty"`
	Price           float64           `json:"price"`
	Category        *CategoryResponse `json:"category,omitempty"`
	CategoryID      string            `json:"category_id"`
	CountInStock    int               `json:"count_in_stock"`
	Rating          float64           `json:"rating"`
	NumReviews      int               `json:"num_reviews"`
	IsFeatured      bool              `json:"is_featured"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func ProductToResponse(p *entity.Product, c *entity.Category) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		RichDescription: p.RichDescription,
		Image:           p.Image,
		Images:          p.Images,
		Brand:           p.Brand,
		Price:           p.Price,
		Category:        CategoryToResponse(c),
		CategoryID:      p.CategoryID.String(),
		CountInStock:    p.CountInStock,
		Rating:          p.Rating,
		NumReviews:      p.NumReviews,
		IsFeatured:      p.IsFeatured,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
