package requests

// CreateLead is the contact-form payload. Company is a honeypot field the
// real form never fills; a non-empty value marks the submission as a bot.
type CreateLead struct {
	Name      string   `json:"name" validate:"required,max=120"`
	Contact   string   `json:"contact" validate:"required,max=200"`
	Coverages []string `json:"coverages" validate:"dive,coverage"`
	Note      string   `json:"note" validate:"max=2000"`
	Page      string   `json:"page" validate:"max=500"`
	Company   string   `json:"company"`
}
