package errors

import (
	"net/http"

	"dispatch/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns the detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Response is the envelope the error middleware writes for failed requests.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries machine-readable error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// GeocoderUnavailableError signals a transport or protocol failure of the
// geocoding provider, implementing the AppError interface. Unlike a missing
// credential or an unknown address, this class halts the dispatch batch.
type GeocoderUnavailableError struct {
	err error
}

// NewGeocoderUnavailableError creates a geocoder-related error
func NewGeocoderUnavailableError(err error) AppError {
	return &GeocoderUnavailableError{err: err}
}

// Error implements the error interface
func (e *GeocoderUnavailableError) Error() string {
	return errors.Wrap(e.err, "geocoding provider unavailable").Error()
}

// Unwrap exposes the underlying cause.
func (e *GeocoderUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *GeocoderUnavailableError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *GeocoderUnavailableError) ErrorCode() string {
	return "GEOCODER_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *GeocoderUnavailableError) Message() string {
	return "Geocoding provider unavailable"
}

// Details returns the underlying provider failure
func (e *GeocoderUnavailableError) Details() string {
	return e.err.Error()
}

// NewDatabaseExecuteError wraps a low-level database failure into an AppError.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", message, err.Error())

	return errors.Wrap(base, message)
}
