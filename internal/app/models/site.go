package models

type Contact struct {
	Phone     string `json:"phone"`
	PhoneHref string `json:"phone_href"`
	Email     string `json:"email"`
	EmailHref string `json:"email_href"`
	Address   string `json:"address"`
	MapsHref  string `json:"maps_href"`
}

type SocialLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Quote  string `json:"quote"`
}

// Office carries the postal fields the SEO collaborator needs for
// schema.org PostalAddress emission.
type Office struct {
	Locality   string `json:"locality"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	AreaServed string `json:"area_served"`
}

type SiteProfile struct {
	Name        string       `json:"name"`
	Tagline     string       `json:"tagline"`
	Description string       `json:"description"`
	Contact     Contact      `json:"contact"`
	Socials     []SocialLink `json:"socials"`
	Languages   []string     `json:"languages"`
	HoursShort  string       `json:"hours_short"`
}

// ServiceEntry is a raw catalog line as authored in the site definition
// file, before classification and the denylist are applied.
type ServiceEntry struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Blurb string `json:"blurb"`
}

// SiteDefinition is the validated, immutable site content built once from the
// site definition file at startup. It is injected into the usecases and never
// mutated afterwards.
type SiteDefinition struct {
	Profile          SiteProfile
	Office           Office
	Hours            WeeklyHours
	Services         []ServiceEntry
	DisabledServices []string
	QuickFilters     []string
	Bundles          []string
	FAQs             []FAQ
	ServiceFAQs      []FAQ
	Testimonials     []Testimonial
	CarrierLogoCount int
}
