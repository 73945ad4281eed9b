package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"

	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)

const (
	StatusOK                  = 200
	StatusAccepted            = 202
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
