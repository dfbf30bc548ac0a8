package routers

import (
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(r chi.Router, mw *middlewares.Middlewares, controller *controllers.DoctorController, scheduleController *controllers.ScheduleController) {
	// Public directory endpoints used by the patient app.
	r.Get("/", controller.SearchDoctors)
	r.Get("/{doctorID}", controller.GetDoctor)
	r.Get("/{doctorID}/schedule", scheduleController.GetSchedule)
	r.Get("/{doctorID}/availability", scheduleController.DayAvailability)

	// Admin onboarding.
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRoles(constvars.RoleAdmin))

		r.Post("/", controller.RegisterDoctor)
		r.Put("/{doctorID}/registration", controller.ResolveRegistration)
		r.Put("/{doctorID}/vacations/{vacationID}", scheduleController.ResolveVacation)
	})

	// Doctor self-service.
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRoles(constvars.RoleDoctor))

		r.Put("/me", controller.UpdateProfile)
		r.Post("/me/documents", controller.UploadDocument)
		r.Put("/me/schedule/working-hours", scheduleController.UpsertWorkingHours)
		r.Post("/me/schedule/breaks", scheduleController.AddBreak)
		r.Delete("/me/schedule/breaks", scheduleController.RemoveBreak)
		r.Post("/me/schedule/holidays", scheduleController.AddHoliday)
		r.Delete("/me/schedule/holidays/{date}", scheduleController.RemoveHoliday)
		r.Post("/me/schedule/vacations", scheduleController.RequestVacation)
	})
}
