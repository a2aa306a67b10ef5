// Package errors provides structured error handling for the pipeshare
// application. It defines error types with codes, messages, causes, and
// contextual information shared across the rest, usecase, gateway, and driver
// layers.
package errors

import (
	"errors"
	"fmt"
	"log/slog"

	"pipeshare/domain"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase        ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeDuplicateInvite ErrorCode = "DUPLICATE_INVITE"
	ErrCodeInviteNotFound  ErrorCode = "INVITE_NOT_FOUND"
	ErrCodePipelineNotFound ErrorCode = "PIPELINE_NOT_FOUND"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeExternalAPI     ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout         ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown         ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// DuplicateInviteError creates an AppError for conflicting invites. It wraps
// the domain sentinel so callers can keep using errors.Is.
func DuplicateInviteError(email string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateInvite,
		Message: "user already invited to this pipeline",
		Cause:   fmt.Errorf("%w: %s", domain.ErrDuplicateInvite, email),
		Context: map[string]interface{}{"email": email},
	}
}

// InviteNotFoundError creates an AppError for revoke/update on a missing invite.
func InviteNotFoundError(inviteID string) *AppError {
	return &AppError{
		Code:    ErrCodeInviteNotFound,
		Message: "invite not found",
		Cause:   fmt.Errorf("%w: %s", domain.ErrInviteNotFound, inviteID),
		Context: map[string]interface{}{"invite_id": inviteID},
	}
}

// PipelineNotFoundError creates an AppError for operations on a missing pipeline.
func PipelineNotFoundError(pipelineID string) *AppError {
	return &AppError{
		Code:    ErrCodePipelineNotFound,
		Message: "pipeline not found",
		Cause:   fmt.Errorf("%w: %s", domain.ErrPipelineNotFound, pipelineID),
		Context: map[string]interface{}{"pipeline_id": pipelineID},
	}
}

// ForbiddenError creates an AppError for insufficient effective permission.
func ForbiddenError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
		Cause:   domain.ErrForbidden,
		Context: context,
	}
}

// ExternalAPIError creates an AppError for external API call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeExternalAPI,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Code extracts the ErrorCode from any error, falling back to ErrCodeUnknown.
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	var ctxErr *AppContextError
	if errors.As(err, &ctxErr) {
		return ErrorCode(ctxErr.Code)
	}
	return ErrCodeUnknown
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
		return
	}

	logger.Error("unknown error occurred",
		"operation", operation,
		"error", err.Error(),
	)
}
