package controllers

import (
	"context"
	"net/http"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewPatientController(patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (c *PatientController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	profile, err := c.PatientUsecase.GetProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccess, profile)
}

func (c *PatientController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.UpdatePatientProfile
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	profile, err := c.PatientUsecase.UpdateProfile(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientProfileUpdatedSuccess, profile)
}

func (c *PatientController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	maxBytes := c.InternalConfig.App.DocumentMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	url, err := c.PatientUsecase.UploadPhoto(ctx, session, file, header.Size, header.Filename, header.Header.Get(constvars.HeaderContentType))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentUploadedSuccess, map[string]string{"url": url})
}

func (c *PatientController) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.PatientUsecase.DeactivateAccount(ctx, session); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientDeactivatedSuccess, nil)
}
