package routers

import (
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/services/core/offices"

	"github.com/go-chi/chi/v5"
)

func attachLocationRoutes(router chi.Router, middlewares *middlewares.Middlewares, officeController *offices.OfficeController) {
	router.Get("/", officeController.GetLocation)
	router.Get("/status", officeController.GetOpenStatus)
}
