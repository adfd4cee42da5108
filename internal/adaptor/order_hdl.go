package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders for the authenticated user
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetAllOrders handles GET /api/orders (admin only)
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// GetOrder handles GET /api/orders/{id}; owners see their own orders,
// admins see any
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	if role != "admin" && order.UserID != userID.String() {
		utils.ResponseForbidden(w, "Access denied")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// GetMyOrders handles GET /api/orders/get/userorders for the authenticated user
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// UpdateOrderStatus handles PUT /api/orders/{id} (admin only)
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", order)
}

// DeleteOrder handles DELETE /api/orders/{id} (admin only)
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}

// GetTotalSales handles GET /api/orders/get/totalsales (admin only)
func (h *OrderHandler) GetTotalSales(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalSales(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get total sales")
		return
	}

	utils.ResponseSuccess(w, "Total sales retrieved successfully", total)
}

// handleServiceError maps order service errors to HTTP responses
func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "no order items"),
		strings.Contains(errMsg, "invalid product"),
		strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Failed to "+operation)
	}
}
