package adaptor

import (
	"ecommerce-api/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Order    *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
	}
}
