package entity

import "github.com/google/uuid"

type Product struct {
	Base
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	RichDescription string    `db:"rich_description"`
	Image           string    `db:"image"`
	Images          []string  `db:"images"`
	Brand           string    `db:"brand"`
	Price           float64   `db:"price"`
	CategoryID      uuid.UUID `db:"category_id"`
	CountInStock    int       `db:"count_in_stock"`
	Rating          float64   `db:"rating"`
	NumReviews      int       `db:"num_reviews"`
	IsFeatured      bool      `db:"is_featured"`
}
