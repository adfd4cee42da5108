package usecase

import (
	"context"
	"testing"

	"ecommerce-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateCategoryUniqueName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &request.CreateCategoryRequest{Name: "Electronics"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateCategoryRenameCollision(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	svc := NewCategoryService(categoryRepo, zap.NewNop())

	_, err := svc.Create(context.Background(), &request.CreateCategoryRequest{Name: "Books"})
	require.NoError(t, err)
	created, err := svc.Create(context.Background(), &request.CreateCategoryRequest{Name: "Games"})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	taken := "Books"
	_, err = svc.Update(context.Background(), id, &request.UpdateCategoryRequest{Name: &taken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateCategoryKeepOwnName(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	svc := NewCategoryService(categoryRepo, zap.NewNop())

	created, err := svc.Create(context.Background(), &request.CreateCategoryRequest{Name: "Music", Color: "#fff"})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	// Re-sending the current name alongside a color change is not a collision
	same := "Music"
	color := "#000"
	updated, err := svc.Update(context.Background(), id, &request.UpdateCategoryRequest{Name: &same, Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "Music", updated.Name)
	assert.Equal(t, "#000", updated.Color)
}

func TestGetCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
