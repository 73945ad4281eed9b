package responses

import "brokerage-service/internal/app/models"

// CategoryCount backs the tab badges ("Personal (5)").
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

type ServiceList struct {
	Category     models.Category   `json:"category"`
	Query        string            `json:"query"`
	Offerings    []models.Offering `json:"offerings"`
	Counts       []CategoryCount   `json:"counts"`
	QuickFilters []string          `json:"quick_filters"`
	// ResetSuggestions is the known-good chip set offered when Offerings is
	// empty so the frontend can render the one-click reset affordance.
	ResetSuggestions []string `json:"reset_suggestions,omitempty"`
}
