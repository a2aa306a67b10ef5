package errors

import (
	"fmt"
	"net/http"
)

// AppContextError represents an error enriched with the layer, component, and
// operation it crossed on its way out of the application.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // Clean Architecture layer (rest, usecase, gateway, driver)
	Component string                 `json:"component,omitempty"` // Specific component/service name
	Operation string                 `json:"operation,omitempty"` // Specific operation/method name
	Cause     error                  `json:"-"`                   // Underlying error (not serialized)
	Context   map[string]interface{} `json:"context,omitempty"`   // Additional context information
}

// Error implements the error interface.
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping.
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes.
func (e *AppContextError) HTTPStatusCode() int {
	switch ErrorCode(e.Code) {
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeInviteNotFound, ErrCodePipelineNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicateInvite:
		return http.StatusConflict
	case ErrCodeExternalAPI:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeDatabase, ErrCodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse represents the structure of error responses sent to clients.
type HTTPContextResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response.
// Internal layer/component/context details stay server-side.
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.SafeMessage(),
	}
}

// SafeMessage returns a message suitable for clients. Codes that map to
// internal failures get a generic message so database and upstream details
// never leak.
func (e *AppContextError) SafeMessage() string {
	switch ErrorCode(e.Code) {
	case ErrCodeDatabase, ErrCodeUnknown, ErrCodeExternalAPI:
		return "an unexpected error occurred"
	default:
		return e.Message
	}
}

// NewAppContextError creates a new AppContextError with full context.
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// NewValidationContextError creates an AppContextError for input validation failures.
func NewValidationContextError(
	message, layer, component, operation string,
	context map[string]interface{},
) *AppContextError {
	return NewAppContextError(string(ErrCodeValidation), message, layer, component, operation, nil, context)
}

// NewUnknownContextError creates an AppContextError for unclassified errors.
func NewUnknownContextError(
	message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	return NewAppContextError(string(ErrCodeUnknown), message, layer, component, operation, cause, context)
}

// EnrichWithContext creates a new AppContextError by enriching an existing
// error with an outer layer's context.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]interface{},
) *AppContextError {
	mergedContext := make(map[string]interface{})
	for k, v := range err.Context {
		mergedContext[k] = v
	}
	for k, v := range additionalContext {
		mergedContext[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   mergedContext,
	}
}
