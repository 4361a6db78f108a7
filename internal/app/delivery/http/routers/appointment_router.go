package routers

import (
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authentication).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authentication).Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authentication).Delete("/{appointmentID}", appointmentController.CancelAppointment)
}
