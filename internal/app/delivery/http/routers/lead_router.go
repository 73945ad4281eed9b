package routers

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/services/core/leads"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func attachLeadRoutes(router chi.Router, middlewares *middlewares.Middlewares, leadController *leads.LeadController, internalConfig *config.InternalConfig) {
	// Contact-form submissions get a much tighter per-IP budget than the
	// read-only endpoints.
	router.Use(httprate.LimitByIP(internalConfig.App.LeadMaxRequests, time.Minute))
	router.Post("/", leadController.CreateLead)
}
