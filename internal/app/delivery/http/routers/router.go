package routers

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/services/core/catalog"
	"brokerage-service/internal/app/services/core/content"
	"brokerage-service/internal/app/services/core/leads"
	"brokerage-service/internal/app/services/core/offices"
	"brokerage-service/internal/pkg/constvars"
	"brokerage-service/internal/pkg/exceptions"
	"brokerage-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	catalogController *catalog.CatalogController,
	officeController *offices.OfficeController,
	contentController *content.ContentController,
	leadController *leads.LeadController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/services", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, catalogController)
			})

			r.Route("/locations", func(r chi.Router) {
				attachLocationRoutes(r, middlewares, officeController)
			})

			r.Route("/content", func(r chi.Router) {
				attachContentRoutes(r, middlewares, contentController)
			})

			r.Route("/leads", func(r chi.Router) {
				attachLeadRoutes(r, middlewares, leadController, internalConfig)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)))
	})
}
