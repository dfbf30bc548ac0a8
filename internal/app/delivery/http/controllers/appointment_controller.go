package controllers

import (
	"context"
	"net/http"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		AppointmentUsecase: appointmentUsecase,
		Log:                logger,
	}
}

func (c *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.BookAppointment
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointment, err := c.AppointmentUsecase.BookAppointment(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, appointment)
}

func (c *AppointmentController) GetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointment, err := c.AppointmentUsecase.GetAppointment(ctx, session, chi.URLParam(r, "appointmentID"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, appointment)
}

func (c *AppointmentController) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	status := r.URL.Query().Get("status")
	pagination := utils.BuildPaginationRequest(r)

	appointments, total, err := c.AppointmentUsecase.ListMyAppointments(ctx, session, status, pagination)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, paginationResponse, appointments)
}

func (c *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.UpdateAppointmentStatus
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointment, err := c.AppointmentUsecase.UpdateStatus(ctx, session, chi.URLParam(r, "appointmentID"), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	message := constvars.AppointmentConfirmed
	if request.Status == constvars.AppointmentStatusCompleted {
		message = constvars.AppointmentCompleted
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, appointment)
}

func (c *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.CancelAppointment
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	appointment, err := c.AppointmentUsecase.CancelAppointment(ctx, session, chi.URLParam(r, "appointmentID"), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelled, appointment)
}
