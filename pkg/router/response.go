package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/person-api/pkg/errorx"
)

// Responder is implemented by responses which choose their own status code, set
// headers or send a body different from themselves. A nil body sends no content.
type Responder interface {
	Respond(header http.Header) (status int, body any)
}

type errorResponse struct {
	Code    int64               `json:"code"`
	Error   string              `json:"error"`
	Details []errorx.FieldError `json:"details,omitempty"`
}

func newErrorResponse(err error) errorResponse {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return errorResponse{
			Code:    int64(errx.Code),
			Error:   errx.Message,
			Details: errx.Details,
		}
	}

	return errorResponse{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func writeResponse(c *gin.Context, resp any) int {
	status, body := http.StatusOK, resp
	if r, ok := resp.(Responder); ok {
		status, body = r.Respond(c.Writer.Header())
	}

	if body == nil || status == http.StatusNoContent {
		c.Status(status)
		return status
	}

	c.JSON(status, body)
	return status
}
