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

type ProductService interface {
	Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetAll(ctx context.Context) ([]*response.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo *repository.Repository // product plus category for existence checks
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The category must exist
	categoryID, err := utils.ParseUUID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID")
	}
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("failed to check category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	// 3. Create and save
	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Description:     req.Description,
		RichDescription: req.RichDescription,
		Image:           req.Image,
		Images:          req.Images,
		Brand:           req.Brand,
		Price:           req.Price,
		CategoryID:      categoryID,
		CountInStock:    *req.CountInStock,
		Rating:          req.Rating,
		NumReviews:      req.NumReviews,
		IsFeatured:      req.IsFeatured,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)
	return response.ProductToResponse(product, category), nil
}

func (s *productService) GetAll(ctx context.Context) ([]*response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products")
	}

	// Resolve categories once and join in memory
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}
	byID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	result := make([]*response.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, response.ProductToResponse(p, byID[p.CategoryID]))
	}
	return result, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	category, err := s.repo.Category.FindByID(ctx, product.CategoryID)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", product.CategoryID.String()))
		return nil, fmt.Errorf("failed to get category")
	}

	return response.ProductToResponse(product, category), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load the current record
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	// 3. Apply only the fields the request carries
	if req.CategoryID != nil {
		categoryID, err := utils.ParseUUID(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID")
		}
		category, err := s.repo.Category.FindByID(ctx, categoryID)
		if err != nil {
			s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", *req.CategoryID))
			return nil, fmt.Errorf("failed to check category")
		}
		if category == nil {
			return nil, fmt.Errorf("category not found")
		}
		product.CategoryID = categoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.RichDescription != nil {
		product.RichDescription = *req.RichDescription
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CountInStock != nil {
		product.CountInStock = *req.CountInStock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.NumReviews != nil {
		product.NumReviews = *req.NumReviews
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	product.UpdatedAt = time.Now()

	// 4. Persist
	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("failed to update product")
	}

	category, err := s.repo.Category.FindByID(ctx, product.CategoryID)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", product.CategoryID.String()))
		return nil, fmt.Errorf("failed to get category")
	}

	return response.ProductToResponse(product, category), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("failed to get product")
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("failed to delete product")
	}

	return nil
}
