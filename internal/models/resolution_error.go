package models

import "encoding/json"

// ErrorCode identifies a resolution diagnostic.
type ErrorCode string

const (
	ErrInvalidProjectFile ErrorCode = "ERR_INVALID_PROJECT_FILE"
	ErrInvalidProjectType ErrorCode = "ERR_INVALID_PROJECT_TYPE"
	ErrMissingProjectType ErrorCode = "ERR_MISSING_PROJECT_TYPE"
	ErrMultiMissingConfig ErrorCode = "ERR_MULTI_MISSING_CONFIG"
	ErrMultiMissingName   ErrorCode = "ERR_MULTI_MISSING_NAME"
)

// ResolutionError is a recoverable diagnostic. Diagnostics are collected
// in a ResolutionResult; they are data, not control flow.
type ResolutionError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// NewResolutionError creates a diagnostic, optionally wrapping a cause.
func NewResolutionError(code ErrorCode, message string, cause error) *ResolutionError {
	return &ResolutionError{Code: code, Message: message, Err: cause}
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// resolutionErrorJSON is the wire shape; causes are flattened to text.
type resolutionErrorJSON struct {
	Code    ErrorCode `json:"code" yaml:"code"`
	Message string    `json:"message" yaml:"message"`
	Cause   string    `json:"cause,omitempty" yaml:"cause,omitempty"`
}

func (e *ResolutionError) wire() resolutionErrorJSON {
	out := resolutionErrorJSON{Code: e.Code, Message: e.Message}
	if e.Err != nil {
		out.Cause = e.Err.Error()
	}
	return out
}

func (e *ResolutionError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire())
}

func (e *ResolutionError) MarshalYAML() (interface{}, error) {
	return e.wire(), nil
}
