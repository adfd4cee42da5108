package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCategory configures catalog category routes: reads for any
// authenticated user, writes for admins only
func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.User, config, log)
	admin := middleware.Admin(repo.User, log)

	r.Route("/api/categories", func(r chi.Router) {
		r.Use(auth)

		// ==================== READ ROUTES ====================
		r.Get("/", categoryHandler.GetAllCategories) // GET /api/categories
		r.Get("/{id}", categoryHandler.GetCategory)  // GET /api/categories/{category-id}

		// ==================== ADMIN ROUTES ====================
		r.With(admin).Post("/", categoryHandler.CreateCategory)       // POST /api/categories
		r.With(admin).Put("/{id}", categoryHandler.UpdateCategory)    // PUT /api/categories/{category-id}
		r.With(admin).Delete("/{id}", categoryHandler.DeleteCategory) // DELETE /api/categories/{category-id}
	})
}
