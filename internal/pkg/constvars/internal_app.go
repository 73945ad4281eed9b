package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "BRKG_SVC_"
)

const (
	RedisKeyCatalogList = "catalog:offerings"
	RedisKeySiteContent = "content:site"
	RedisKeyRelayLock   = "leads:relay:lock"
)

const (
	// Open-status labels rendered by the live badge.
	OpenStatusOpenLabel        = "Open now"
	OpenStatusClosedLabel      = "Closed"
	OpenStatusAppointmentLabel = "By appt."
)

// Coverage options offered by the contact form. Kept in sync with the
// frontend's quick-select chips.
var LeadCoverageOptions = []string{"Auto", "Home", "Life", "Business", "SR-22"}
