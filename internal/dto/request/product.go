package request

type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"required"`
	RichDescription string   `json:"rich_description,omitempty"`
	Image           string   `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	Brand           string   `json:"brand,omitempty"`
	Price           float64  `json:"price" validate:"gte=0"`
	CategoryID      string   `json:"category_id" validate:"required,uuid4"`
	CountInStock    *int     `json:"count_in_stock" validate:"required,gte=0,lte=255"`
	Rating          float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	NumReviews      int      `json:"num_reviews,omitempty" validate:"omitempty,gte=0"`
	IsFeatured      bool     `json:"is_featured,omitempty"`
}

// UpdateProductRequest carries optional fields; nil means leave unchanged
type UpdateProductRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	RichDescription *string  `json:"rich_description,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	Brand           *string  `json:"brand,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID      *string  `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	CountInStock    *int     `json:"count_in_stock,omitempty" validate:"omitempty,gte=0,lte=255"`
	Rating          *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	NumReviews      *int     `json:"num_reviews,omitempty" validate:"omitempty,gte=0"`
	IsFeatured      *bool    `json:"is_featured,omitempty"`
}
