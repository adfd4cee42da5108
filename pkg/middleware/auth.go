package middleware

import (
	"net/http"
	"strings"

	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

// Auth middleware validates the bearer JWT and resolves the caller identity.
// The token only establishes identity; the user record must still exist.
func Auth(userRepo repository.UserRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			// Verify signature and expiry
			claims, err := utils.ParseToken(token, config.JWT.Secret)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := utils.ParseUUID(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed user ID", zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Token may outlive the account, so the user must still exist
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve token user",
					zap.Error(err),
					zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token user no longer exists", zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "User not found")
				return
			}

			// Role is read fresh from the store, not trusted from the claim
			role := "customer"
			if user.IsAdmin {
				role = "admin"
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, role)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin middleware checks the admin role against the persisted record,
// so revoking admin takes effect without re-issuing tokens
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context (set by Auth)
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Get user from repo
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check if admin
			if user == nil || !user.IsAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			// 4. Continue to handler
			next.ServeHTTP(w, r)
		})
	}
}
