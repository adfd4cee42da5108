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

type CategoryService interface {
	Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetAll(ctx context.Context) ([]*response.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Category names are unique
	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check category name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to check category name")
	}
	if existing != nil {
		return nil, fmt.Errorf("category name already exists")
	}

	// 3. Create and save
	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)
	return response.CategoryToResponse(category), nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]*response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	return response.CategoriesToResponse(categories), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*response.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", id.String()))
		return nil, fmt.Errorf("failed to get category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	return response.CategoryToResponse(category), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load the current record
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", id.String()))
		return nil, fmt.Errorf("failed to get category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	// 3. A renamed category must not collide with another one
	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.categoryRepo.FindByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("Failed to check category name", zap.Error(err), zap.String("name", *req.Name))
			return nil, fmt.Errorf("failed to check category name")
		}
		if existing != nil {
			return nil, fmt.Errorf("category name already exists")
		}
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.UpdatedAt = time.Now()

	// 4. Persist
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("category_id", id.String()))
		return nil, fmt.Errorf("failed to update category")
	}

	return response.CategoryToResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", id.String()))
		return fmt.Errorf("failed to get category")
	}
	if category == nil {
		return fmt.Errorf("category not found")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", id.String()))
		return fmt.Errorf("failed to delete category")
	}

	return nil
}
