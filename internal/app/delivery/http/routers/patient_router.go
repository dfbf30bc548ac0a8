package routers

import (
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(r chi.Router, mw *middlewares.Middlewares, controller *controllers.PatientController) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireRoles(constvars.RolePatient))

		r.Get("/me", controller.GetProfile)
		r.Put("/me", controller.UpdateProfile)
		r.Post("/me/photo", controller.UploadPhoto)
		r.Delete("/me", controller.DeactivateAccount)
	})
}
