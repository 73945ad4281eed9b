package catalog

import (
	"brokerage-service/internal/app/models"
	"regexp"
	"strings"
)

// Classification and popularity are keyword matches against the lowercased
// display name. Business wins over Specialty when both match; everything
// else lands in Personal.
var (
	businessPattern  = regexp.MustCompile(`bop|commercial|liability|workers|business|comp|bond`)
	specialtyPattern = regexp.MustCompile(`rv|boat|motorcycle|sr-?22|umbrella|special`)
	popularPattern   = regexp.MustCompile(`auto|home|bop|commercial|sr-?22|umbrella`)
)

const defaultBlurb = "Coverage tailored to your needs and budget."

// Classify assigns a catalog category from the offering display name.
func Classify(displayName string) models.Category {
	name := strings.ToLower(displayName)
	switch {
	case businessPattern.MatchString(name):
		return models.CategoryBusiness
	case specialtyPattern.MatchString(name):
		return models.CategorySpecialty
	default:
		return models.CategoryPersonal
	}
}

// Popular reports whether an offering gets the popular badge.
func Popular(displayName string) bool {
	return popularPattern.MatchString(strings.ToLower(displayName))
}

// BuildCatalog derives the immutable offering list from the authored service
// entries, dropping disabled keys and preserving authored order.
func BuildCatalog(entries []models.ServiceEntry, disabled []string) []models.Offering {
	disabledKeys := make(map[string]struct{}, len(disabled))
	for _, key := range disabled {
		disabledKeys[key] = struct{}{}
	}

	offerings := make([]models.Offering, 0, len(entries))
	for _, entry := range entries {
		if _, ok := disabledKeys[entry.Key]; ok {
			continue
		}
		description := entry.Blurb
		if description == "" {
			description = defaultBlurb
		}
		offerings = append(offerings, models.Offering{
			ID:          entry.Key,
			DisplayName: entry.Title,
			Description: description,
			Category:    Classify(entry.Title),
			Popular:     Popular(entry.Title),
		})
	}
	return offerings
}
