// Package response defines consistent HTTP response structures.
// Successful bodies are the resource itself; every failure uses the Error envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"employeedir/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Fields maps each invalid field to its violation messages
	Fields domain.FieldErrors `json:"fields,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource and its location.
func Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// ValidationFailed sends a 400 response carrying the field-error map.
func ValidationFailed(c *gin.Context, fields domain.FieldErrors, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "VALIDATION_ERROR",
			Message:   "One or more fields are invalid",
			Fields:    fields,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusUnauthorized, Error{
		Error: ErrorDetail{
			Code:      "UNAUTHORIZED",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Unauthorized errors report the DomainError message verbatim.
// Errors without a client-facing kind (storage, referential integrity) become
// a generic 500 and are attached to the context for the logging middleware.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var verr *domain.ValidationError
	var derr *domain.DomainError
	switch {
	case errors.As(err, &verr):
		ValidationFailed(c, verr.Fields, requestID)
	case domain.IsValidationError(err):
		BadRequest(c, err.Error(), requestID)
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsUnauthorized(err):
		message := "Unauthorized client."
		if errors.As(err, &derr) && derr.Message != "" {
			message = derr.Message
		}
		Unauthorized(c, message, requestID)
	default:
		_ = c.Error(err)
		InternalError(c, requestID)
	}
}
