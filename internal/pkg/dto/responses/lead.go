package responses

type Lead struct {
	ID string `json:"id,omitempty"`
}
