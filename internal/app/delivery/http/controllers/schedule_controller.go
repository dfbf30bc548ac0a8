package controllers

import (
	"context"
	"net/http"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/dto/requests"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleController struct {
	ScheduleUsecase contracts.ScheduleUsecase
	Log             *zap.Logger
}

func NewScheduleController(scheduleUsecase contracts.ScheduleUsecase, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Log:             logger,
	}
}

func (c *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	schedule, err := c.ScheduleUsecase.GetSchedule(ctx, chi.URLParam(r, "doctorID"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccess, schedule)
}

func (c *ScheduleController) UpsertWorkingHours(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.UpsertWorkingHours
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	schedule, err := c.ScheduleUsecase.UpsertWorkingHours(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkingHoursSavedSuccess, schedule)
}

func (c *ScheduleController) AddBreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.AddBreak
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	schedule, err := c.ScheduleUsecase.AddBreak(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BreakAddedSuccess, schedule)
}

func (c *ScheduleController) RemoveBreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	day := r.URL.Query().Get("day")
	start := r.URL.Query().Get("start")
	if !utils.IsWeekdayKey(day) {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	schedule, err := c.ScheduleUsecase.RemoveBreak(ctx, session, day, start)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSavedSuccess, schedule)
}

func (c *ScheduleController) AddHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.AddHoliday
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	schedule, err := c.ScheduleUsecase.AddHoliday(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HolidayAddedSuccess, schedule)
}

func (c *ScheduleController) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	schedule, err := c.ScheduleUsecase.RemoveHoliday(ctx, session, chi.URLParam(r, "date"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleSavedSuccess, schedule)
}

func (c *ScheduleController) RequestVacation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.RequestVacation
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	vacation, err := c.ScheduleUsecase.RequestVacation(ctx, session, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.VacationRequestedSuccess, vacation)
}

func (c *ScheduleController) ResolveVacation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	var request requests.ResolveVacation
	if err := decodeAndValidate(r, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	vacation, err := c.ScheduleUsecase.ResolveVacation(ctx, session, chi.URLParam(r, "doctorID"), chi.URLParam(r, "vacationID"), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VacationResolvedSuccess, vacation)
}

func (c *ScheduleController) DayAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	date, err := utils.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	availability, err := c.ScheduleUsecase.DayAvailability(ctx, chi.URLParam(r, "doctorID"), date)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccess, availability)
}
