package usecase

import (
	"context"
	"testing"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedCategory(t *testing.T, repo *repository.Repository, name string) *entity.Category {
	t.Helper()
	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: name,
	}
	require.NoError(t, repo.Category.Create(context.Background(), category))
	return category
}

func createProductReq(categoryID string, stock int) *request.CreateProductRequest {
	return &request.CreateProductRequest{
		Name:         "Gadget",
		Description:  "A gadget",
		Price:        19.99,
		CategoryID:   categoryID,
		CountInStock: &stock,
	}
}

func TestCreateProductRequiresCategory(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), createProductReq(uuid.New().String(), 5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category not found")
}

func TestCreateProductEmbedsCategory(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())
	category := seedCategory(t, repo, "Electronics")

	resp, err := svc.Create(context.Background(), createProductReq(category.ID.String(), 5))
	require.NoError(t, err)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "Electronics", resp.Category.Name)
	assert.Equal(t, 5, resp.CountInStock)
}

func TestCreateProductStockBounds(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())
	category := seedCategory(t, repo, "Electronics")

	_, err := svc.Create(context.Background(), createProductReq(category.ID.String(), 256))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = svc.Create(context.Background(), createProductReq(category.ID.String(), -1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	// Zero stock is a valid state, just not purchasable
	_, err = svc.Create(context.Background(), createProductReq(category.ID.String(), 0))
	require.NoError(t, err)
}

func TestUpdateProductPartialFields(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())
	category := seedCategory(t, repo, "Electronics")

	created, err := svc.Create(context.Background(), createProductReq(category.ID.String(), 5))
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	price := 29.99
	updated, err := svc.Update(context.Background(), id, &request.UpdateProductRequest{
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, 29.99, updated.Price)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 5, updated.CountInStock)
}

func TestUpdateProductCategoryMustExist(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())
	category := seedCategory(t, repo, "Electronics")

	created, err := svc.Create(context.Background(), createProductReq(category.ID.String(), 5))
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	bogus := uuid.New().String()
	_, err = svc.Update(context.Background(), id, &request.UpdateProductRequest{
		CategoryID: &bogus,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category not found")
}

func TestDeleteProductNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewProductService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
