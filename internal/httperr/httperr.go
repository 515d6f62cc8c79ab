package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ojt-tracker/internal/validation"
)

type HTTPError struct {
	Code    string                  `json:"error_code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, CodeInternal, "Unknown error occurred.")
}

func Unauthorized(c *gin.Context) {
	Write(c, http.StatusUnauthorized, CodeUnauthorized, "Authentication required.")
}

// Validation answers 400 listing every failing field.
func Validation(c *gin.Context, verr *validation.Error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Code:    CodeValidationFailed,
		Message: "One or more fields are invalid.",
		Fields:  verr.Fields,
	})
}
