package wire

import (
	"ecommerce-api/internal/adaptor"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access
// control. Registered flat so they share the /api/users prefix with
// the public register/login routes.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(repo.User, config, log)
	admin := middleware.Admin(repo.User, log)

	// ==================== PROTECTED USER ROUTES ====================
	// Own profile - requires authentication only
	r.With(auth).Get("/api/users/profile", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	// User administration - requires both authentication AND admin role
	r.With(auth, admin).Get("/api/users", userHandler.GetAllUsers)
	r.With(auth, admin).Get("/api/users/get/count", userHandler.CountUsers)
	r.With(auth, admin).Get("/api/users/{id}", userHandler.GetUser)
	r.With(auth, admin).Put("/api/users/{id}", userHandler.UpdateUser)
	r.With(auth, admin).Put("/api/users/{id}/password", userHandler.UpdatePassword)
	r.With(auth, admin).Delete("/api/users/{id}", userHandler.DeleteUser)
}
