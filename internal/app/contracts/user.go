package contracts

import (
	"context"

	"mbote-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}
