// Package types holds the JSON envelope shapes shared by every handler.
package types

// SuccessEnvelope wraps every JSON success body under a "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the wire form of an application error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// NewErrorEnvelope builds the body written for non-2xx responses.
func NewErrorEnvelope(code, message string, details any) ErrorEnvelope {
	return ErrorEnvelope{Error: APIError{
		Code:    code,
		Message: message,
		Details: details,
	}}
}
