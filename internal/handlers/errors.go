package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbpkg "github.com/BruksfildServices01/ojt-tracker/internal/db"
	"github.com/BruksfildServices01/ojt-tracker/internal/httperr"
	"github.com/BruksfildServices01/ojt-tracker/internal/middleware"
	"github.com/BruksfildServices01/ojt-tracker/internal/validation"
)

// fail maps err onto the response. Anything that is not a validation or
// business error is logged and answered with a bare 500.
func fail(c *gin.Context, logger *zap.Logger, err error) {
	var verr *validation.Error

	switch {
	case errors.As(err, &verr):
		httperr.Validation(c, verr)

	case httperr.IsBusiness(err, httperr.CodeEntryNotFound):
		httperr.NotFound(c, httperr.CodeEntryNotFound, "Entry not found.")

	default:
		fields := []zap.Field{
			zap.Error(err),
			zap.String("route", c.FullPath()),
		}
		if code := dbpkg.PgCode(err); code != "" {
			fields = append(fields, zap.String("sqlstate", code))
		}
		logger.Error("request failed", fields...)
		httperr.Internal(c)
	}
}

func ownerID(c *gin.Context) string {
	return c.MustGet(middleware.ContextUserID).(string)
}

// parseID accepts 1..MaxInt64, the range of the bigint id column.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidID, "Entry id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into dst. An empty body decodes as {} so the
// schema can report each missing field; malformed JSON answers 400
// invalid_request.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	httperr.BadRequest(c, httperr.CodeInvalidRequest, "Request body must be a JSON object.")
	return false
}
