package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetAll(ctx context.Context) ([]*response.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	Count(ctx context.Context) (*response.UserCountResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, req *request.UpdatePasswordRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]*response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	return response.UsersToResponse(users), nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return response.UserToResponse(user), nil
}

func (s *userService) Count(ctx context.Context) (*response.UserCountResponse, error) {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	return &response.UserCountResponse{Count: count}, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load the current record
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// 3. Apply only the fields the request carries
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	user.UpdatedAt = time.Now()

	// 4. Persist
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("failed to update user")
	}

	s.log.Info("User updated", zap.String("user_id", id.String()))
	return response.UserToResponse(user), nil
}

func (s *userService) UpdatePassword(ctx context.Context, id uuid.UUID, req *request.UpdatePasswordRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Load the user
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// 3. The old password must check out before anything changes
	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Password change with wrong old password", zap.String("user_id", id.String()))
		return fmt.Errorf("old password is incorrect")
	}

	// 4. Hash and store the new one
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to update password")
	}

	s.log.Info("Password updated", zap.String("user_id", id.String()))
	return nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to get user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to delete user")
	}

	return nil
}
