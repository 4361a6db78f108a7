package routers

import (
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.With(middlewares.Authentication).Get("/{providerID}/available", availabilityController.GetProviderAvailability)
}
