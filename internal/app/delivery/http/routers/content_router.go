package routers

import (
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/services/core/content"

	"github.com/go-chi/chi/v5"
)

func attachContentRoutes(router chi.Router, middlewares *middlewares.Middlewares, contentController *content.ContentController) {
	router.Get("/", contentController.GetSiteContent)
}
