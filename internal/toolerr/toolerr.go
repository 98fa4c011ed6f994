// Package toolerr defines the coded error type every tool resolves
// failures to. Codes are part of the wire contract: callers match on
// them, so each code has exactly one meaning and is never remapped.
package toolerr

import (
	"errors"
	"fmt"
)

// Stable error codes.
const (
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeInvalidDateRange = "INVALID_DATE_RANGE"
	CodeFileNotFound     = "FILE_NOT_FOUND"
	CodeFormatMismatch   = "FORMAT_MISMATCH"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeListFailed       = "LIST_FAILED"
	CodeGetFailed        = "GET_FAILED"
	CodeStatsFailed      = "STATS_FAILED"
	CodeComparisonFailed = "COMPARISON_FAILED"
	CodeUnknownTool      = "UNKNOWN_TOOL"
)

// Error is a structured tool failure. Details is optional human context
// (never parsed by callers).
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a coded error.
func New(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// Wrap returns err unchanged when it already carries a code, otherwise
// wraps it under the given fallback code with the original message
// preserved as details. A nil err returns nil.
func Wrap(err error, fallbackCode, message string) *Error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return &Error{Code: fallbackCode, Message: message, Details: err.Error()}
}
