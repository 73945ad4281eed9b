package responses

import "brokerage-service/internal/app/models"

type SiteContent struct {
	Name             string               `json:"name"`
	Tagline          string               `json:"tagline"`
	Description      string               `json:"description"`
	Contact          models.Contact       `json:"contact"`
	Socials          []models.SocialLink  `json:"socials"`
	Languages        []string             `json:"languages"`
	HoursShort       string               `json:"hours_short"`
	FAQs             []models.FAQ         `json:"faqs"`
	ServiceFAQs      []models.FAQ         `json:"service_faqs"`
	Testimonials     []models.Testimonial `json:"testimonials"`
	Bundles          []string             `json:"bundles"`
	CarrierLogoCount int                  `json:"carrier_logo_count"`
}
