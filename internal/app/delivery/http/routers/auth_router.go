package routers

import (
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(r chi.Router, mw *middlewares.Middlewares, controller *controllers.AuthController) {
	r.Post("/register", controller.RegisterPatient)
	r.Post("/verify-otp", controller.VerifyOTP)
	r.Post("/resend-otp", controller.ResendOTP)
	r.Post("/login", controller.Login)
	r.Post("/forgot-password", controller.ForgotPassword)
	r.Post("/reset-password", controller.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Post("/logout", controller.Logout)
		r.Put("/change-password", controller.ChangePassword)
	})
}
