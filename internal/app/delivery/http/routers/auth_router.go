package routers

import (
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/", authController.Register)
}

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/", authController.Login)
	router.With(middlewares.Authentication).Delete("/", authController.Logout)
}
