// Package errors defines the application-level error kinds. Every failure
// surfaced to a client is one of these values (possibly wrapped with
// context), so the delivery layer can map it to a status code and a stable
// business code without inspecting error strings.
package errors

import (
	"net/http"

	"clipstream/internal/errors"
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error kinds. Validation errors are raised before any store
// mutation; store-layer failures are translated at the repository boundary.
var (
	// ErrInvalidArgument covers malformed identifiers, missing required
	// fields, disallowed sort keys and unknown like-target kinds.
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"invalid request input",
		"",
	)

	// ErrUnauthenticated means no verified subject was present, or the
	// presented credential/token failed verification.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"authentication required",
		"",
	)

	// ErrInvalidCredentials is the login-specific unauthenticated kind.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect username or password",
		"",
	)

	// ErrRefreshTokenInvalid covers expired, malformed, revoked and
	// superseded (reused) refresh tokens alike.
	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"refresh token is expired or has been used",
		"",
	)

	// ErrPermissionDenied means the authenticated subject is not the owner
	// of the entity being mutated.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"you do not own this resource",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrChannelNotFound = NewBaseError(
		http.StatusNotFound,
		"CHANNEL_NOT_FOUND",
		"channel not found",
		"",
	)

	ErrVideoNotFound = NewBaseError(
		http.StatusNotFound,
		"VIDEO_NOT_FOUND",
		"video not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"comment not found",
		"",
	)

	ErrTweetNotFound = NewBaseError(
		http.StatusNotFound,
		"TWEET_NOT_FOUND",
		"tweet not found",
		"",
	)

	ErrPlaylistNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAYLIST_NOT_FOUND",
		"playlist not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	// ErrUserAlreadyExists is raised when the unique username or email
	// constraint rejects a write.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email is already registered",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"media upload failed",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
