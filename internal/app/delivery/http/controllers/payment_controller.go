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

type PaymentController struct {
	PaymentUsecase contracts.PaymentUsecase
	Log            *zap.Logger
}

func NewPaymentController(paymentUsecase contracts.PaymentUsecase, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		PaymentUsecase: paymentUsecase,
		Log:            logger,
	}
}

func (c *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.CreatePayment
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	payment, err := c.PaymentUsecase.CreatePayment(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentCreatedSuccess, payment)
}

func (c *PaymentController) GetPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	payment, err := c.PaymentUsecase.GetPayment(ctx, session, chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentSuccess, payment)
}

func (c *PaymentController) ListMyPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	payments, total, err := c.PaymentUsecase.ListMyPayments(ctx, session, pagination)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPaymentsSuccess, paginationResponse, payments)
}

func (c *PaymentController) RefundPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.RefundPayment
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	payment, err := c.PaymentUsecase.RefundPayment(ctx, session, chi.URLParam(r, "paymentID"), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentRefundedSuccess, payment)
}
