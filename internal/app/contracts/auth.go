package contracts

import (
	"context"

	"mbote-service/internal/app/models"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error)
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error
	ResendOTP(ctx context.Context, request *requests.ResendOTP) error
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
