package routers

import (
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(r chi.Router, mw *middlewares.Middlewares, controller *controllers.AppointmentController) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Get("/", controller.ListMyAppointments)
		r.Get("/{appointmentID}", controller.GetAppointment)
		r.Put("/{appointmentID}/cancel", controller.CancelAppointment)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRoles(constvars.RolePatient))
			r.Post("/", controller.BookAppointment)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRoles(constvars.RoleDoctor))
			r.Put("/{appointmentID}/status", controller.UpdateStatus)
		})
	})
}
