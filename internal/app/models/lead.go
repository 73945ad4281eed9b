package models

import "time"

// Lead is a quote request accepted from the contact form, queued until the
// relay worker forwards it to the external form-relay service.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	Coverages   []string  `json:"coverages"`
	Note        string    `json:"note"`
	Page        string    `json:"page"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// QueuedLead is the queue payload. FailedCount tracks relay attempts so the
// worker can dead-letter a lead past the retry threshold.
type QueuedLead struct {
	Lead        Lead `json:"lead"`
	FailedCount int  `json:"failed_count"`
}
