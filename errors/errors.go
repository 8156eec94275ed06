package errors

import "github.com/eaugeas/bst/logs"

// Codes that identify the errors reported by the demo
const (
	ErrorCodeUnknown = iota
	ErrorCodeEmptyTree
	ErrorCodeCorruptedTree
	ErrorCodeInvalidConfig
	ErrorCodeInvalidSource
)

// Error is a failure reported to the user of the demo together
// with a code that identifies its kind
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	Description string `json:"description"`

	// Cause is the error that triggered this one, if any
	Cause error `json:"-"`
}

// New creates an Error from its cause. The cause's message is
// used as description
func New(code int, cause error) *Error {
	return &Error{ErrorCode: code, Description: cause.Error(), Cause: cause}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
