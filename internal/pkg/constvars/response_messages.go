package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Catalog messages
	GetServicesSuccessMessage = "get services successfully"

	// Location messages
	GetLocationSuccessMessage   = "get location successfully"
	GetOpenStatusSuccessMessage = "get open status successfully"

	// Content messages
	GetSiteContentSuccessMessage = "get site content successfully"

	// Lead messages
	CreateLeadSuccessMessage = "your request was received, we will reach out shortly"
)
