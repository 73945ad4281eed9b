package catalog

import (
	"brokerage-service/internal/app/models"
	"strings"
)

// FilterOfferings returns the offerings in category whose display name or
// description contains the trimmed free-text term, case-insensitively. An
// empty term returns the category partition unchanged. Authored order is
// preserved either way.
func FilterOfferings(offerings []models.Offering, category models.Category, freeText string) []models.Offering {
	matched := make([]models.Offering, 0, len(offerings))
	for _, offering := range offerings {
		if offering.Category == category {
			matched = append(matched, offering)
		}
	}

	term := strings.ToLower(strings.TrimSpace(freeText))
	if term == "" {
		return matched
	}

	filtered := matched[:0]
	for _, offering := range matched {
		if strings.Contains(strings.ToLower(offering.DisplayName), term) ||
			strings.Contains(strings.ToLower(offering.Description), term) {
			filtered = append(filtered, offering)
		}
	}
	return filtered
}
