package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrNotRegistered):
		return http.StatusForbidden, "NOT_REGISTERED", "no phone number registered for this chat"
	case errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusBadRequest, "INVALID_PHONE", "invalid phone number"
	case errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest, "INVALID_YEAR", "invalid year"
	case errors.Is(err, domain.ErrInvalidMonth):
		return http.StatusBadRequest, "INVALID_MONTH", "invalid month"
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, "UNKNOWN_ACTION", "unknown callback action"
	case errors.Is(err, domain.ErrStageOrder):
		return http.StatusConflict, "STAGE_ORDER", "selection stage order violated"
	case errors.Is(err, domain.ErrDocumentToken):
		return http.StatusUnauthorized, "INVALID_DOCUMENT_TOKEN", "document token is invalid or expired"
	case errors.Is(err, domain.ErrDocumentMissing):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
