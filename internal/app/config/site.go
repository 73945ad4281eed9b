package config

import (
	"brokerage-service/internal/app/models"
	"brokerage-service/internal/pkg/utils"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// siteDefinitionFile mirrors the JSON layout of the site definition file.
// Validation happens here, once, so the rest of the application can treat the
// resulting models.SiteDefinition as well-formed (malformed content is a
// configuration error, not a runtime condition).
type siteDefinitionFile struct {
	Profile struct {
		Name        string              `json:"name" validate:"required"`
		Tagline     string              `json:"tagline"`
		Description string              `json:"description"`
		Contact     models.Contact      `json:"contact" validate:"required"`
		Socials     []models.SocialLink `json:"socials"`
		Languages   []string            `json:"languages"`
		HoursShort  string              `json:"hours_short"`
	} `json:"profile"`
	Office models.Office `json:"office"`
	Hours  []struct {
		Label string `json:"label" validate:"required"`
		Mode  string `json:"mode" validate:"required"`
		Open  string `json:"open"`
		Close string `json:"close"`
	} `json:"hours" validate:"required"`
	Services         []models.ServiceEntry `json:"services" validate:"required,min=1"`
	DisabledServices []string              `json:"disabled_services"`
	QuickFilters     []string              `json:"quick_filters"`
	Bundles          []string              `json:"bundles"`
	FAQs             []models.FAQ          `json:"faqs"`
	ServiceFAQs      []models.FAQ          `json:"service_faqs"`
	Testimonials     []models.Testimonial  `json:"testimonials"`
	CarrierLogoCount int                   `json:"carrier_logo_count"`
}

// LoadSiteDefinition reads, parses, and validates the site definition file.
func LoadSiteDefinition(path string) (*models.SiteDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read site definition %s: %w", path, err)
	}

	var file siteDefinitionFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("cannot parse site definition %s: %w", path, err)
	}
	if err := utils.ValidateStruct(&file); err != nil {
		return nil, fmt.Errorf("site definition %s is invalid: %w", path, err)
	}

	hours, err := buildWeeklyHours(file)
	if err != nil {
		return nil, fmt.Errorf("site definition %s has an invalid hours table: %w", path, err)
	}

	seen := make(map[string]struct{}, len(file.Services))
	for _, entry := range file.Services {
		if entry.Key == "" || entry.Title == "" {
			return nil, fmt.Errorf("site definition %s has a service without key or title", path)
		}
		if _, duplicate := seen[entry.Key]; duplicate {
			return nil, fmt.Errorf("site definition %s has duplicate service key %q", path, entry.Key)
		}
		seen[entry.Key] = struct{}{}
	}

	definition := &models.SiteDefinition{
		Profile: models.SiteProfile{
			Name:        file.Profile.Name,
			Tagline:     file.Profile.Tagline,
			Description: file.Profile.Description,
			Contact:     file.Profile.Contact,
			Socials:     file.Profile.Socials,
			Languages:   file.Profile.Languages,
			HoursShort:  file.Profile.HoursShort,
		},
		Office:           file.Office,
		Hours:            hours,
		Services:         file.Services,
		DisabledServices: file.DisabledServices,
		QuickFilters:     file.QuickFilters,
		Bundles:          file.Bundles,
		FAQs:             file.FAQs,
		ServiceFAQs:      file.ServiceFAQs,
		Testimonials:     file.Testimonials,
		CarrierLogoCount: file.CarrierLogoCount,
	}
	return definition, nil
}

func buildWeeklyHours(file siteDefinitionFile) (models.WeeklyHours, error) {
	var hours models.WeeklyHours
	if len(file.Hours) != len(hours) {
		return hours, fmt.Errorf("expected exactly %d weekday rows, got %d", len(hours), len(file.Hours))
	}

	for i, row := range file.Hours {
		day := models.DaySchedule{Label: row.Label, Mode: models.DayMode(row.Mode)}
		switch day.Mode {
		case models.DayModeClosed, models.DayModeAppointment:
		case models.DayModeOpen:
			open, err := models.ParseTimeOfDay(row.Open)
			if err != nil {
				return hours, fmt.Errorf("row %q: %w", row.Label, err)
			}
			closeAt, err := models.ParseTimeOfDay(row.Close)
			if err != nil {
				return hours, fmt.Errorf("row %q: %w", row.Label, err)
			}
			if open.MinuteOfDay() >= closeAt.MinuteOfDay() {
				return hours, fmt.Errorf("row %q: open time %s must precede close time %s", row.Label, open, closeAt)
			}
			day.Open = open
			day.Close = closeAt
		default:
			return hours, fmt.Errorf("row %q: unknown mode %q", row.Label, row.Mode)
		}
		hours[i] = day
	}
	return hours, nil
}
