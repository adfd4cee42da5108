package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// AddItem handles POST /api/cart/items.
// The cart always belongs to the authenticated user; the body cannot
// target someone else's cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = userID.String()

	cart, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add cart item")
		return
	}

	utils.ResponseSuccess(w, "Item added to cart", cart)
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cart, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// UpdateItem handles PUT /api/cart/items
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = userID.String()

	cart, err := h.service.UpdateItem(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update cart item")
		return
	}

	utils.ResponseSuccess(w, "Cart item updated", cart)
}

// RemoveItem handles DELETE /api/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RemoveCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = userID.String()

	cart, err := h.service.RemoveItem(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "Cart item removed", cart)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.handleServiceError(w, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared", nil)
}

// handleServiceError maps cart service errors to HTTP responses
func (h *CartHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"),
		strings.Contains(errMsg, "not in cart"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "insufficient stock"):
		h.log.Warn(operation+" failed - insufficient stock", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Failed to "+operation)
	}
}
