package errors

import (
	"fmt"
)

// ParseError represents a YAML settings parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures settings or theme validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TokenError reports an unknown or malformed design token reference.
type TokenError struct {
	Token   string
	Message string
}

// NewTokenError constructs a TokenError for the given token path.
func NewTokenError(token, message string) error {
	return &TokenError{Token: token, Message: message}
}

func (e *TokenError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("token error [%s]: %s", e.Token, e.Message)
}

// APIError represents a non-success response from the Webflow API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// NewAPIError constructs an APIError from a response status and body fields.
func NewAPIError(statusCode int, code, message string) error {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != "" {
		return fmt.Sprintf("api error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
