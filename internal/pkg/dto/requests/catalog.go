package requests

// ServiceQuery carries the catalog filter inputs taken from query params.
type ServiceQuery struct {
	Category string
	FreeText string
}
