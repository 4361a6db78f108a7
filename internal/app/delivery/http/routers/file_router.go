package routers

import (
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFileRoutes(router chi.Router, middlewares *middlewares.Middlewares, fileController *controllers.FileController) {
	router.With(middlewares.Authentication).Post("/", fileController.UploadAvatar)
}
