package routers

import (
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(r chi.Router, mw *middlewares.Middlewares, controller *controllers.PaymentController) {
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Get("/{paymentID}", controller.GetPayment)

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRoles(constvars.RolePatient))
			r.Post("/", controller.CreatePayment)
			r.Get("/", controller.ListMyPayments)
		})

		// Refunds are an admin decision.
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRoles(constvars.RoleAdmin))
			r.Post("/{paymentID}/refund", controller.RefundPayment)
		})
	})
}
