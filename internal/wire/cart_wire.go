package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCart configures cart routes. Every route acts on the
// authenticated user's own cart.
func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config, log)).Route("/api/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)           // GET /api/cart
		r.Delete("/", cartHandler.ClearCart)      // DELETE /api/cart
		r.Post("/items", cartHandler.AddItem)     // POST /api/cart/items
		r.Put("/items", cartHandler.UpdateItem)   // PUT /api/cart/items
		r.Delete("/items", cartHandler.RemoveItem) // DELETE /api/cart/items
	})
}
