package repository

import (
	"ecommerce-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Cart     CartRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
