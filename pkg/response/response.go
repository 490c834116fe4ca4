// Package response holds the boundary's error replies and the mapping
// from the application error taxonomy to HTTP statuses.
package response

import (
	"errors"
	"net/http"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Error: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	sendError(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	sendError(c, http.StatusNotFound, message)
}

// ServiceUnavailable sends a 503 response.
func ServiceUnavailable(c *gin.Context, message string) {
	sendError(c, http.StatusServiceUnavailable, message)
}

// InternalError sends a 500 response. Internal details stay out of the
// body; callers log them.
func InternalError(c *gin.Context) {
	sendError(c, http.StatusInternalServerError, "internal server error")
}

// FromError maps an application error to its HTTP status: validation
// errors to 400, unknown session/question to 404, external collaborator
// failures to 503 with the upstream cause preserved, anything else to
// 500.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnsupportedFormat), errors.Is(err, apperr.ErrEmptyDocument):
		BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrSessionNotFound), errors.Is(err, apperr.ErrQuestionNotFound):
		NotFound(c, err.Error())
	case apperr.IsExternal(err):
		ServiceUnavailable(c, err.Error())
	default:
		InternalError(c)
	}
}
