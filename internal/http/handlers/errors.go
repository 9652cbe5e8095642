package handlers

import (
	"net/http"

	"frontend/internal/domain"
	"frontend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// respondError is the single error envelope of the gateway: message, a stable
// machine code, the request id, and optional details.
func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"message":    message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	if details != nil {
		payload["details"] = details
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Field-error
// aggregates keep their per-field map under "fields" so the form can place
// each message next to the matching input.
func RespondDomainError(c *gin.Context, err error) {
	if fields, ok := domain.IsFieldErrors(err); ok {
		respondError(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), gin.H{"fields": fields})
		return
	}
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "terjadi kesalahan", nil)
	}
}
