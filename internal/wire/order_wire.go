package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireOrder configures order routes. Customers place and read their
// own orders; listing all orders, status changes, deletion and sales
// aggregation stay admin-only.
func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	admin := middleware.Admin(repo.User, log)

	r.With(middleware.Auth(repo.User, config, log)).Route("/api/orders", func(r chi.Router) {
		// ==================== CUSTOMER ROUTES ====================
		r.Post("/", orderHandler.CreateOrder)                 // POST /api/orders
		r.Get("/get/userorders", orderHandler.GetMyOrders)    // GET /api/orders/get/userorders
		r.Get("/{id}", orderHandler.GetOrder)                 // GET /api/orders/{order-id} (owner or admin)

		// ==================== ADMIN ROUTES ====================
		r.With(admin).Get("/", orderHandler.GetAllOrders)           // GET /api/orders
		r.With(admin).Get("/get/totalsales", orderHandler.GetTotalSales) // GET /api/orders/get/totalsales
		r.With(admin).Put("/{id}", orderHandler.UpdateOrderStatus)  // PUT /api/orders/{order-id}
		r.With(admin).Delete("/{id}", orderHandler.DeleteOrder)     // DELETE /api/orders/{order-id}
	})
}
