package controllers

import (
	"context"
	"net/http"
	"strconv"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (c *DoctorController) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.RegisterDoctor
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	result, err := c.DoctorUsecase.RegisterDoctor(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, result)
}

func (c *DoctorController) ResolveRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.ResolveDoctorRegistration
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	doctorID := chi.URLParam(r, "doctorID")
	if err := c.DoctorUsecase.ResolveRegistration(ctx, session, doctorID, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	message := constvars.DoctorApprovedSuccess
	if !request.Approve {
		message = constvars.DoctorRejectedSuccess
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

func (c *DoctorController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	doctor, err := c.DoctorUsecase.GetDoctor(ctx, chi.URLParam(r, "doctorID"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccess, doctor)
}

func (c *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.UpdateDoctorProfile
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	doctor, err := c.DoctorUsecase.UpdateProfile(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorProfileUpdatedSuccess, doctor)
}

func (c *DoctorController) UploadDocument(w http.ResponseWriter, r *http.Request) {
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
	file, header, err := r.FormFile("document")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	url, err := c.DoctorUsecase.UploadDocument(ctx, session, file, header.Size, header.Filename, header.Header.Get(constvars.HeaderContentType))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentUploadedSuccess, map[string]string{"url": url})
}

func (c *DoctorController) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	query := r.URL.Query()
	request := &requests.SearchDoctors{
		Specialization: query.Get("specialization"),
		Name:           query.Get("name"),
		Language:       query.Get("language"),
	}
	request.Latitude, _ = strconv.ParseFloat(query.Get("latitude"), 64)
	request.Longitude, _ = strconv.ParseFloat(query.Get("longitude"), 64)
	request.MaxDistanceKM, _ = strconv.ParseFloat(query.Get("maxDistanceKm"), 64)

	pagination := utils.BuildPaginationRequest(r)
	doctors, total, err := c.DoctorUsecase.SearchDoctors(ctx, request, pagination)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccess, paginationResponse, doctors)
}
