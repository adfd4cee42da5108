package usecase

import (
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Product  ProductService
	Cart     CartService
	Order    OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Product:  NewProductService(repo, log),
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo, log),
	}
}
