package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nextplay/internal/apperr"
)

// Handlers return upstream payloads as-is; errors always serialize as
// {"error": message} so clients have one failure shape to parse.

func Ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Fail maps an error to its HTTP status via the apperr kind.
func Fail(c *gin.Context, err error) {
	Error(c, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.ValidationFailed:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.SourceUnavailable:
		return http.StatusBadGateway
	case apperr.NotConfigured:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
