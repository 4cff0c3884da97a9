package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-taskhub/internal/service"
	"go-taskhub/internal/transport/http/response"
)

// writeError maps the service taxonomy onto HTTP status codes. Anything
// untyped is reported as a generic internal failure; the cause stays in the
// logs.
func writeError(c *gin.Context, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		response.Err(c, statusOf(se.Kind), se.Msg)
		if se.Err != nil {
			_ = c.Error(se.Err)
		}
		return
	}
	_ = c.Error(err)
	response.Err(c, http.StatusInternalServerError, "Internal server error")
}

func statusOf(k service.Kind) int {
	switch k {
	case service.KindValidation, service.KindInvalidReference:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
