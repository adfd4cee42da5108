package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetAll(ctx context.Context) ([]*response.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*response.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TotalSales(ctx context.Context) (*response.TotalSalesResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
	}
}

func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("no order items")
	}

	// 2. Resolve every product before writing anything, so a bad line
	// rejects the whole order instead of committing a partial one
	products := make(map[string]*entity.Product, len(req.Items))
	for _, line := range req.Items {
		productID, err := utils.ParseUUID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product %s", line.ProductID)
		}
		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", line.ProductID))
			return nil, fmt.Errorf("failed to get product")
		}
		if product == nil {
			return nil, fmt.Errorf("invalid product %s", line.ProductID)
		}
		products[line.ProductID] = product
	}

	// 3. Build the order with prices frozen at this moment
	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           userID,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
		Status:           entity.OrderStatusPending,
	}

	items := make([]*entity.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product := products[line.ProductID]
		item := &entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		}
		order.TotalPrice += item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}
	order.Items = items

	// 4. One transaction: order and all its lines, or nothing
	if err := s.repo.Order.CreateWithItems(ctx, order, items); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Float64("total_price", order.TotalPrice),
	)

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get order user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get user")
	}

	expanded, err := s.expandProducts(ctx, products)
	if err != nil {
		return nil, err
	}

	return response.OrderToResponse(order, user, expanded), nil
}

func (s *orderService) GetAll(ctx context.Context) ([]*response.OrderResponse, error) {
	orders, err := s.repo.Order.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("failed to get orders")
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", id.String()))
		return nil, fmt.Errorf("failed to get order")
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	user, err := s.repo.User.FindByID(ctx, order.UserID)
	if err != nil {
		s.log.Error("Failed to get order user", zap.Error(err), zap.String("user_id", order.UserID.String()))
		return nil, fmt.Errorf("failed to get user")
	}

	products, err := s.resolveProducts(ctx, order.Items)
	if err != nil {
		return nil, err
	}

	return response.OrderToResponse(order, user, products), nil
}

func (s *orderService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get orders")
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Status is a free-form label; no transition rules are enforced
	if err := s.repo.Order.UpdateStatus(ctx, id, req.Status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("order not found")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", req.Status),
	)

	return s.GetByID(ctx, id)
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", id.String()))
		return fmt.Errorf("failed to get order")
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	if err := s.repo.Order.DeleteWithItems(ctx, id); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", id.String()))
		return fmt.Errorf("failed to delete order")
	}

	return nil
}

func (s *orderService) TotalSales(ctx context.Context) (*response.TotalSalesResponse, error) {
	total, err := s.repo.Order.TotalSales(ctx)
	if err != nil {
		s.log.Error("Failed to compute total sales", zap.Error(err))
		return nil, fmt.Errorf("failed to compute total sales")
	}

	return &response.TotalSalesResponse{TotalSales: total}, nil
}

// resolveProducts expands order lines to full product data, category included.
// Lines whose product was deleted since the order was placed stay unexpanded;
// the stored unit price still prices them.
func (s *orderService) resolveProducts(ctx context.Context, items []*entity.OrderItem) (map[string]*response.ProductResponse, error) {
	products := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID.String()]; ok {
			continue
		}
		p, err := s.repo.Product.FindByID(ctx, item.ProductID)
		if err != nil {
			s.log.Error("Failed to resolve order product",
				zap.Error(err),
				zap.String("product_id", item.ProductID.String()),
			)
			return nil, fmt.Errorf("failed to get product")
		}
		if p != nil {
			products[item.ProductID.String()] = p
		}
	}
	return s.expandProducts(ctx, products)
}

func (s *orderService) expandProducts(ctx context.Context, products map[string]*entity.Product) (map[string]*response.ProductResponse, error) {
	expanded := make(map[string]*response.ProductResponse, len(products))
	for id, p := range products {
		category, err := s.repo.Category.FindByID(ctx, p.CategoryID)
		if err != nil {
			s.log.Error("Failed to resolve product category",
				zap.Error(err),
				zap.String("category_id", p.CategoryID.String()),
			)
			return nil, fmt.Errorf("failed to get category")
		}
		expanded[id] = response.ProductToResponse(p, category)
	}
	return expanded, nil
}
