package handlers

import (
	"errors"
	"net/http"

	"bookmarks_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal    = "internal error"
	errInvalidBody = "invalid request body"
	errValidation  = "validation failed"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error  string            `json:"error" example:"not found"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// logged under logKey and reported as a bare 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, errorResponse{Error: errValidation, Fields: ve.Fields})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Error: service.ErrConflict.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidCredentials.Error()})
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: errBadToken})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: service.ErrNotFound.Error()})
	default:
		fields := append([]interface{}{"request_id", requestIDFrom(c), "err", err}, kv...)
		h.log.Errorw(logKey, fields...)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
		return
	}

	fields := append([]interface{}{"request_id", requestIDFrom(c), "err", err}, kv...)
	h.log.Infow(logKey, fields...)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("bad_request_body", "request_id", requestIDFrom(c), "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: errInvalidBody})
		return false
	}
	return true
}
