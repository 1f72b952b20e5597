package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const codeInternal = "INTERNAL"

var internalError = httperr.Response{
	Status:  http.StatusInternalServerError,
	Message: "Internal server error",
	Code:    codeInternal,
}

// ErrorHandler renders the last public error when a handler aborted without
// writing a body. Non-public errors never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		slog.Error("unhandled request error",
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"error", c.Errors.Last().Err,
		)
		c.JSON(http.StatusInternalServerError, internalError)
	}
}

// CustomRecovery converts a panic into the 500 envelope. A panic inside a
// unit of work has already rolled the transaction back.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			slog.Error("recovered from panic",
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"error", err.Error(),
				"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), 12),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
		}()
		c.Next()
	}
}
