package controllers

import (
	"context"
	"net/http"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase contracts.AuthUsecase
	Log         *zap.Logger
}

func NewAuthController(authUsecase contracts.AuthUsecase, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase: authUsecase,
		Log:         logger,
	}
}

func (c *AuthController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.RegisterPatient
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.AuthUsecase.RegisterPatient(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientRegisteredSuccess, result)
}

func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.VerifyOTP
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.VerifyOTP(ctx, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPVerifiedSuccess, nil)
}

func (c *AuthController) ResendOTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.ResendOTP
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.ResendOTP(ctx, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPSentSuccess, nil)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.Login
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.AuthUsecase.Login(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.Logout(ctx, session); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.ChangePassword
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.ChangePassword(ctx, session, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordChangeSuccess, nil)
}

func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.ForgotPassword
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.ForgotPassword(ctx, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OTPSentSuccess, nil)
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var request requests.ResetPassword
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.AuthUsecase.ResetPassword(ctx, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordChangeSuccess, nil)
}
