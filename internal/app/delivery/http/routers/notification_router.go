package routers

import (
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.With(middlewares.Authentication).Get("/", notificationController.FindAll)
}
