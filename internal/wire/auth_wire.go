package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public registration and login routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)
}
