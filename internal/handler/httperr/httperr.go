package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the failure form of the shared {success, data?, message?} envelope.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// AbortWithCode writes the error envelope and keeps err on the context for
// the error middleware. code is machine-readable, e.g. SLOT_FULL.
func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Message: msg, Code: code, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
