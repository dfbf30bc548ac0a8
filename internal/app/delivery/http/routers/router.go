package routers

import (
	"fmt"
	"time"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	scheduleController *controllers.ScheduleController,
	appointmentController *controllers.AppointmentController,
	paymentController *controllers.PaymentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(mw.LimitRequestBody)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, mw, patientController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, mw, doctorController, scheduleController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, mw, appointmentController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, mw, paymentController)
			})
		})
	})
}
