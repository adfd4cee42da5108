package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProduct configures catalog product routes: reads for any
// authenticated user, writes for admins only
func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.User, config, log)
	admin := middleware.Admin(repo.User, log)

	r.Route("/api/products", func(r chi.Router) {
		r.Use(auth)

		// ==================== READ ROUTES ====================
		r.Get("/", productHandler.GetAllProducts) // GET /api/products
		r.Get("/{id}", productHandler.GetProduct) // GET /api/products/{product-id}

		// ==================== ADMIN ROUTES ====================
		r.With(admin).Post("/", productHandler.CreateProduct)       // POST /api/products
		r.With(admin).Put("/{id}", productHandler.UpdateProduct)    // PUT /api/products/{product-id}
		r.With(admin).Delete("/{id}", productHandler.DeleteProduct) // DELETE /api/products/{product-id}
	})
}
