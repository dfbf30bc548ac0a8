package contracts

import (
	"context"

	"mbote-service/internal/app/models"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) (string, error)
	FindAdminByUserID(ctx context.Context, userID string) (*models.Admin, error)
	AppendActivity(ctx context.Context, adminID string, activity models.AdminActivity) error
}
