package models

// ErrorResponse is the body of every failed chat call. Details is only set
// for unexpected internal failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
