package rest

// ErrorResponse is the JSON body returned by handlers on request failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
