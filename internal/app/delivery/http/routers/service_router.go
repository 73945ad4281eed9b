package routers

import (
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/services/core/catalog"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	// GET /services?category=Personal&q=auto
	router.Get("/", catalogController.FindServices)
}
