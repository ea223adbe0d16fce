package models

import (
	"errors"
	"fmt"
)

// Messages returned to clients. These are the only two error texts the
// analyze endpoint ever produces; provider error text is never relayed.
const (
	MsgURLRequired    = "URL is required"
	MsgAnalysisFailed = "Failed to analyze website. Please try again."
)

// Error codes used in logs and error reports. They are not part of the
// client-facing payload.
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeProviderError       = "PROVIDER_ERROR"
	ErrCodeMalformedReport     = "MALFORMED_REPORT"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// AnalysisError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type AnalysisError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(code, message string, err error) *AnalysisError {
	return &AnalysisError{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first AnalysisError in err's chain,
// or ErrCodeInternal when there is none.
func CodeOf(err error) string {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}
