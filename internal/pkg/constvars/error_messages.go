package constvars

// Validation messages for clients, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"coverage": "must be one of the offered coverage options",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUnknownCategory               = "unknown service category"
	ErrClientRouteNotFound                 = "route not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevUnknownCategory        = "unknown catalog category"
	ErrDevRouteNotFound          = "route not found"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"

	// Redis messages
	ErrDevRedisSet    = "failed to set redis key"
	ErrDevRedisGet    = "failed to get redis key"
	ErrDevRedisDelete = "failed to delete redis key"
	ErrDevRedisUnlock = "failed to release redis lock"

	// Queue messages
	ErrDevQueuePublish = "failed to publish message to queue"
	ErrDevQueueFetch   = "failed to fetch messages from queue"
	ErrDevQueueAck     = "failed to ack queue message"
)
