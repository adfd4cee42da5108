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

type CartService interface {
	AddItem(ctx context.Context, req *request.AddCartItemRequest) (*response.CartResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
	UpdateItem(ctx context.Context, req *request.UpdateCartItemRequest) (*response.CartResponse, error)
	RemoveItem(ctx context.Context, req *request.RemoveCartItemRequest) (*response.CartResponse, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log,
	}
}

func (s *cartService) AddItem(ctx context.Context, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add cart item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	productID, err := utils.ParseUUID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	// 2. The product must exist and have stock to cover the request
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	if product.CountInStock < req.Quantity {
		return nil, fmt.Errorf("insufficient stock")
	}

	// 3. Carts are created lazily on first add
	cart, err := s.repo.Cart.EnsureForUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to ensure cart", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to get cart")
	}

	// 4. Merge: same product again sums quantities in one atomic upsert
	item := &entity.CartItem{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  req.Quantity,
	}
	if err := s.repo.Cart.MergeItem(ctx, item); err != nil {
		s.log.Error("Failed to merge cart item",
			zap.Error(err),
			zap.String("cart_id", cart.ID.String()),
			zap.String("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("failed to add item to cart")
	}

	s.log.Info("Cart item added",
		zap.String("user_id", req.UserID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	return s.Get(ctx, userID)
}

func (s *cartService) Get(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get cart")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart not found")
	}

	products, err := s.resolveProducts(ctx, cart.Items)
	if err != nil {
		return nil, err
	}

	return response.CartToResponse(cart, products), nil
}

func (s *cartService) UpdateItem(ctx context.Context, req *request.UpdateCartItemRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cart item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	productID, err := utils.ParseUUID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	// 2. Stock still has to cover the new quantity
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	if product.CountInStock < req.Quantity {
		return nil, fmt.Errorf("insufficient stock")
	}

	// 3. Overwrite the line quantity, unlike add which merges
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to get cart")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart not found")
	}

	found, err := s.repo.Cart.SetItemQuantity(ctx, cart.ID, productID, req.Quantity)
	if err != nil {
		s.log.Error("Failed to set cart item quantity",
			zap.Error(err),
			zap.String("cart_id", cart.ID.String()),
			zap.String("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("failed to update cart item")
	}
	if !found {
		return nil, fmt.Errorf("product not in cart")
	}

	return s.Get(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, req *request.RemoveCartItemRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Remove cart item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	productID, err := utils.ParseUUID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to get cart")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart not found")
	}

	// 2. Removing an absent product succeeds quietly
	if err := s.repo.Cart.RemoveItem(ctx, cart.ID, productID); err != nil {
		s.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.String("cart_id", cart.ID.String()),
			zap.String("product_id", req.ProductID),
		)
		return nil, fmt.Errorf("failed to remove cart item")
	}

	return s.Get(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Cart.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error("Failed to clear cart", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to clear cart")
	}

	s.log.Info("Cart cleared", zap.String("user_id", userID.String()))
	return nil
}

// resolveProducts expands cart lines to full product data, category included
func (s *cartService) resolveProducts(ctx context.Context, items []*entity.CartItem) (map[string]*response.ProductResponse, error) {
	products := make(map[string]*response.ProductResponse, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID.String()]; ok {
			continue
		}
		p, err := s.repo.Product.FindByID(ctx, item.ProductID)
		if err != nil {
			s.log.Error("Failed to resolve cart product",
				zap.Error(err),
				zap.String("product_id", item.ProductID.String()),
			)
			return nil, fmt.Errorf("failed to get product")
		}
		if p == nil {
			continue
		}
		category, err := s.repo.Category.FindByID(ctx, p.CategoryID)
		if err != nil {
			s.log.Error("Failed to resolve product category",
				zap.Error(err),
				zap.String("category_id", p.CategoryID.String()),
			)
			return nil, fmt.Errorf("failed to get category")
		}
		products[item.ProductID.String()] = response.ProductToResponse(p, category)
	}
	return products, nil
}
