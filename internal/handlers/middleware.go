package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bookmarks_api/internal/models"
	"bookmarks_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"

	userCtxKey      = "user"
	requestIDCtxKey = "request_id"

	errMissingAuthHeader = "missing Authorization header"
	errBadAuthHeader     = "invalid Authorization header format"
	errBadToken          = "invalid or expired token"
)

// authMiddleware rejects the request unless it carries a valid bearer token
// whose subject still exists. The resolved user is stored on the context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		abortUnauthorized(c, errMissingAuthHeader)
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		abortUnauthorized(c, errBadAuthHeader)
		return
	}

	userID, err := h.services.Authorization.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		h.log.Infow("auth_token_rejected", "request_id", requestIDFrom(c), "err", err)
		abortUnauthorized(c, errBadToken)
		return
	}

	user, err := h.services.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.log.Infow("auth_subject_missing", "request_id", requestIDFrom(c), "user_id", userID)
			abortUnauthorized(c, errBadToken)
			return
		}
		h.log.Errorw("auth_subject_lookup_failed", "request_id", requestIDFrom(c), "user_id", userID, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msg})
}

// currentUser returns the identity attached by authMiddleware.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// requestID reuses the caller's X-Request-ID or generates one.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtxKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDCtxKey)
}

// accessLog writes one line per request; level follows the status class.
func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	fields := []interface{}{
		"request_id", requestIDFrom(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", float64(time.Since(start).Microseconds()) / 1000,
		"remote_addr", c.ClientIP(),
	}
	if u := currentUser(c); u != nil {
		fields = append(fields, "user_id", u.ID)
	}

	switch {
	case status >= http.StatusInternalServerError:
		h.log.Errorw("http_request", fields...)
	case status >= http.StatusBadRequest:
		h.log.Warnw("http_request", fields...)
	default:
		h.log.Infow("http_request", fields...)
	}
}
