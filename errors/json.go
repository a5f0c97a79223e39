package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of a serialized error.
// It provides a flat representation without exposing the wrapped error chain.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code" yaml:"code"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Context contains optional metadata about the error.
	// Omitted if empty.
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for serialization.
// Returns nil if err is nil.
//
// For PlatformError instances, extracts code, message and context.
// For standard errors, uses CodeUnknown and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler for platformError.
func (e *platformError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:    string(e.code),
		Message: e.message,
		Context: e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &platformError{
			code:    CodeInternal,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
