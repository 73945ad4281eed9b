package responses

import "brokerage-service/internal/app/models"

// HoursRow is one rendered line of the hours table.
type HoursRow struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Today bool   `json:"today"`
}

// OpeningHoursSpec mirrors a schema.org OpeningHoursSpecification entry for
// the SEO collaborator. Opens/Closes are omitted for closed and
// by-appointment days, matching the original markup.
type OpeningHoursSpec struct {
	DayOfWeek string `json:"day_of_week"`
	Opens     string `json:"opens,omitempty"`
	Closes    string `json:"closes,omitempty"`
}

type Location struct {
	Name         string             `json:"name"`
	Contact      models.Contact     `json:"contact"`
	Office       models.Office      `json:"office"`
	HoursShort   string             `json:"hours_short"`
	Hours        []HoursRow         `json:"hours"`
	OpeningHours []OpeningHoursSpec `json:"opening_hours_specification"`
	Status       models.OpenStatus  `json:"status"`
	Languages    []string           `json:"languages"`
}
