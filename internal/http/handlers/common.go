package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error envelope; err, when present, lands
// under details.cause.
func RespondError(c *gin.Context, status int, message string, err error) {
	var details any
	if err != nil {
		details = gin.H{"cause": err.Error()}
	}
	respondError(c, status, "", message, details)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload tidak valid", err)
		return false
	}
	return true
}
