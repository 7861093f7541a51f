package service

import (
	"context"

	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}
